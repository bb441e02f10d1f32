package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	repo_mocks "github.com/nborodulin471/booking-system/booking/internal/repository/mocks"
	"github.com/nborodulin471/booking-system/booking/internal/service"
	service_mocks "github.com/nborodulin471/booking-system/booking/internal/service/mocks"
	"github.com/nborodulin471/booking-system/pkg/auth"
)

func newUserService(t *testing.T) (*repo_mocks.MockRepository, *service.Service) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo,
		service_mocks.NewMockRoomsClient(c),
		service_mocks.NewMockEnqueuer(c),
		zap.NewExample().Named("test"))
	return repo, svc
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()

	repo, svc := newUserService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User) error {
			require.Equal(t, "ivan", user.Username)
			require.Equal(t, auth.RoleUser, user.Role)
			// the stored password is a bcrypt hash, never the plaintext
			require.NotEqual(t, "secret1", user.Password)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
			return nil
		})

	require.NoError(t, svc.RegisterUser(context.Background(), model.UserCreateRequest{
		Username: "ivan", Password: "secret1", Email: "ivan@example.com",
	}))
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: 42, Username: "ivan", Password: string(hash), Role: auth.RoleUser}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo, svc := newUserService(t)
		repo.EXPECT().GetUser(gomock.Any(), "ivan").Return(stored, nil)

		user, err := svc.Authenticate(context.Background(), model.AuthRequest{Username: "ivan", Password: "secret1"})
		require.NoError(t, err)
		require.Equal(t, int64(42), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		repo, svc := newUserService(t)
		repo.EXPECT().GetUser(gomock.Any(), "ivan").Return(stored, nil)

		_, err := svc.Authenticate(context.Background(), model.AuthRequest{Username: "ivan", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		repo, svc := newUserService(t)
		repo.EXPECT().GetUser(gomock.Any(), "ghost").Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), model.AuthRequest{Username: "ghost", Password: "x"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
