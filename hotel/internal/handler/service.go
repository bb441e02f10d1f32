package handler

import (
	"context"

	"github.com/nborodulin471/booking-system/hotel/internal/model"
	"github.com/nborodulin471/booking-system/hotel/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type HotelService interface {
	CreateHotel(ctx context.Context, hotel model.Hotel) (model.Hotel, error)
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	GetHotel(ctx context.Context, id int64) (model.Hotel, error)
	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	GetAvailableRooms(ctx context.Context) ([]model.Room, error)
	GetRecommendedRooms(ctx context.Context) (model.RecommendResponse, error)
	ConfirmAvailability(ctx context.Context, id int64) (bool, error)
	ReleaseRoom(ctx context.Context, id int64) error
}

var _ HotelService = (*service.Service)(nil)
