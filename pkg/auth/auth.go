package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	AuthorizationHeader = "Authorization"
	Bearer              = "Bearer "

	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// JWTKey signs and verifies the platform's HS256 tokens. Every service shares it.
var JWTKey = jwtKey()

func jwtKey() []byte {
	if k := os.Getenv("JWT_KEY"); k != "" {
		return []byte(k)
	}
	return []byte("booking-platform-secret")
}

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the caller resolved from a verified token. The raw token is kept
// so downstream calls can forward the original credential unchanged.
type Identity struct {
	Username string
	Role     string
	Token    string
}

var ErrInvalidToken = errors.New("invalid token")

func NewToken(username, role, email string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.Profile.Username = username
	claims.Profile.Role = role

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func ParseToken(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JWTKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type ctxKey int

const identityKey ctxKey = 1

func SetAuthContext(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func FromContext(ctx context.Context) (Identity, error) {
	ident, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}, errors.New("no identity in context")
	}
	return ident, nil
}
