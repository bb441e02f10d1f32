package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nborodulin471/booking-system/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, expiresAt, err := auth.NewToken("ivan", auth.RoleAdmin, "ivan@example.com", time.Hour)
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "ivan", claims.Profile.Username)
	require.Equal(t, auth.RoleAdmin, claims.Profile.Role)
	require.Equal(t, "ivan@example.com", claims.Email)
}

func TestParseToken_Invalid(t *testing.T) {
	t.Parallel()

	_, err := auth.ParseToken("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, _, err := auth.NewToken("ivan", auth.RoleUser, "ivan@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	_, err := auth.FromContext(context.Background())
	require.Error(t, err)

	want := auth.Identity{Username: "ivan", Role: auth.RoleUser, Token: "tok"}
	ctx := auth.SetAuthContext(context.Background(), want)
	got, err := auth.FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
