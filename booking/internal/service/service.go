package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	"github.com/nborodulin471/booking-system/booking/internal/repository"
	"github.com/nborodulin471/booking-system/pkg/auth"
	"github.com/nborodulin471/booking-system/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// RoomsClient performs remote state transitions on rooms owned by the hotel
// service, forwarding the caller's credential on every call.
type RoomsClient interface {
	ListAvailable(ctx context.Context, token string) ([]model.Room, error)
	Confirm(ctx context.Context, roomID int64, token string) (bool, error)
	Release(ctx context.Context, roomID int64, token string) error
}

// Enqueuer hands reconciliation tasks to the durable queue.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	rooms    RoomsClient
	enqueuer Enqueuer
}

func NewService(repo repository.Repository, rooms RoomsClient, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		rooms:    rooms,
		enqueuer: enqueuer,
	}
}

// CreateBooking runs the reservation saga: resolve the room, check for
// conflicts, persist PENDING, then confirm the room remotely. A confirm that
// fails in any way is compensated with a release and the booking lands in
// CANCELLED; that outcome is returned to the caller as a normal result, not an
// error.
func (s *Service) CreateBooking(ctx context.Context, ident auth.Identity, req model.CreateBookingRequest) (model.Booking, error) {
	data := req.Booking
	if !data.DateStart.Before(data.DateEnd) {
		return model.Booking{}, errs.ErrInvalidInterval
	}

	user, err := s.repo.GetUser(ctx, ident.Username)
	if err != nil {
		return model.Booking{}, errors.Wrap(err, "resolve user")
	}

	roomID := data.RoomID
	if req.AutoSelect {
		rooms, err := s.rooms.ListAvailable(ctx, ident.Token)
		if err != nil {
			return model.Booking{}, errors.Wrap(err, "list available rooms")
		}
		roomID = pickRoom(rooms)
		if roomID == 0 {
			return model.Booking{}, errs.ErrNoAvailableRoom
		}
	}
	if roomID <= 0 {
		return model.Booking{}, errs.ErrRoomRequired
	}

	candidates, err := s.repo.GetBookingsByRoom(ctx, roomID, data.DateStart, data.DateEnd)
	if err != nil {
		return model.Booking{}, errors.Wrap(err, "load room bookings")
	}
	if HasOverlap(candidates, data.DateStart, data.DateEnd) {
		return model.Booking{}, errs.ErrOverlap
	}

	// Durability checkpoint: the store re-runs the conflict check under a
	// per-room lock, so a concurrent request cannot slip in between.
	booking, err := s.repo.CreateBooking(ctx, model.Booking{
		RoomID:    roomID,
		UserID:    user.ID,
		DateStart: data.DateStart,
		DateEnd:   data.DateEnd,
	})
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusConfirmed
	ok, err := s.rooms.Confirm(ctx, roomID, ident.Token)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn("confirm room", zap.Int64("roomID", roomID), zap.Error(err))
		}
		s.compensate(ctx, roomID, ident.Token)
		status = model.StatusCancelled
	}

	return s.repo.FinishBooking(ctx, booking.ID, status)
}

func (s *Service) GetBookings(ctx context.Context, ident auth.Identity) ([]model.Booking, error) {
	user, err := s.repo.GetUser(ctx, ident.Username)
	if err != nil {
		return nil, errors.Wrap(err, "resolve user")
	}
	return s.repo.GetBookings(ctx, user.ID)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

// CancelBooking hard-deletes the record and, for bookings that had claimed the
// room, releases it remotely so the calendars stay symmetric.
func (s *Service) CancelBooking(ctx context.Context, ident auth.Identity, id int64) error {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}
	if booking.Status == model.StatusConfirmed {
		s.compensate(ctx, booking.RoomID, ident.Token)
	}
	return nil
}

// compensate releases the room best-effort. A failed release must not fail the
// saga, but it cannot be dropped either: the task goes to the reconcile queue
// so the hotel service applies it out-of-band.
func (s *Service) compensate(ctx context.Context, roomID int64, token string) {
	err := s.rooms.Release(ctx, roomID, token)
	if err == nil {
		return
	}
	s.log.Error("release room", zap.Int64("roomID", roomID), zap.Error(err))

	task := model.ReconcileTask{
		TaskID: uuid.NewString(),
		RoomID: roomID,
		Op:     model.OpRelease,
	}
	if err := s.enqueuer.Enqueue(kafka.ReconcileTopic, task); err != nil {
		s.log.Error("enqueue reconcile task", zap.Int64("roomID", roomID), zap.Error(err))
	}
}
