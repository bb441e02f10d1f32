package handler

import (
	"context"

	"github.com/nborodulin471/booking-system/booking/internal/model"
	"github.com/nborodulin471/booking-system/booking/internal/service"
	"github.com/nborodulin471/booking-system/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	CreateBooking(ctx context.Context, ident auth.Identity, req model.CreateBookingRequest) (model.Booking, error)
	GetBookings(ctx context.Context, ident auth.Identity) ([]model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	CancelBooking(ctx context.Context, ident auth.Identity, id int64) error
	RegisterUser(ctx context.Context, req model.UserCreateRequest) error
	Authenticate(ctx context.Context, req model.AuthRequest) (model.User, error)
}

var _ BookingService = (*service.Service)(nil)
