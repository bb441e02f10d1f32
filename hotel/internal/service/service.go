package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/internal/model"
	"github.com/nborodulin471/booking-system/hotel/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) CreateHotel(ctx context.Context, hotel model.Hotel) (model.Hotel, error) {
	return s.repo.CreateHotel(ctx, hotel)
}

func (s *Service) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	return s.repo.ListHotels(ctx)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (model.Hotel, error) {
	return s.repo.GetHotel(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	return s.repo.CreateRoom(ctx, model.Room{HotelID: req.HotelID, Number: req.Number})
}

func (s *Service) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) GetAvailableRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.ListAvailableRooms(ctx)
}

func (s *Service) GetRecommendedRooms(ctx context.Context) (model.RecommendResponse, error) {
	rooms, err := s.repo.ListRecommendedRooms(ctx)
	if err != nil {
		return model.RecommendResponse{}, err
	}
	return model.RecommendResponse{Rooms: rooms}, nil
}

func (s *Service) ConfirmAvailability(ctx context.Context, id int64) (bool, error) {
	return s.repo.ConfirmAvailability(ctx, id)
}

func (s *Service) ReleaseRoom(ctx context.Context, id int64) error {
	return s.repo.ReleaseRoom(ctx, id)
}

// Reconcile applies a queued release task. Releasing is idempotent enough to
// replay: availability is set, the counter is floored at zero.
func (s *Service) Reconcile(ctx context.Context, task model.ReconcileTask) error {
	if task.Op != model.OpRelease {
		s.log.Warn("unknown reconcile op", zap.String("op", task.Op), zap.String("taskID", task.TaskID))
		return nil
	}
	return s.repo.ReleaseRoom(ctx, task.RoomID)
}
