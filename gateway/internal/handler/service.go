package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nborodulin471/booking-system/gateway/internal/model"
	"github.com/nborodulin471/booking-system/gateway/internal/service/booking"
	"github.com/nborodulin471/booking-system/gateway/internal/service/hotel"
	"github.com/nborodulin471/booking-system/pkg/breaker"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	GetBookings(ctx context.Context, token string) ([]model.Booking, int, error)
	Proxy(c echo.Context) (data []byte, statusCode int, err error)
	CB() breaker.CircuitBreaker
}

type HotelService interface {
	GetRoom(ctx context.Context, roomID int64, token string) (model.Room, int, error)
	Proxy(c echo.Context) (data []byte, statusCode int, err error)
	CB() breaker.CircuitBreaker
}

var (
	_ BookingService = (*booking.Service)(nil)
	_ HotelService   = (*hotel.Service)(nil)
)
