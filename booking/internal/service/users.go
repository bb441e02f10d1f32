package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	"github.com/nborodulin471/booking-system/pkg/auth"
)

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Role:     auth.RoleUser,
	})
}

func (s *Service) Authenticate(ctx context.Context, req model.AuthRequest) (model.User, error) {
	user, err := s.repo.GetUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	return user, nil
}
