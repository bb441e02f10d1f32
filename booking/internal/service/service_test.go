package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	repo_mocks "github.com/nborodulin471/booking-system/booking/internal/repository/mocks"
	"github.com/nborodulin471/booking-system/booking/internal/service"
	service_mocks "github.com/nborodulin471/booking-system/booking/internal/service/mocks"
	"github.com/nborodulin471/booking-system/pkg/auth"
	"github.com/nborodulin471/booking-system/pkg/kafka"
)

var ident = auth.Identity{Username: "ivan", Role: auth.RoleUser, Token: "tok-123"}

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func newRequest(roomID int64, autoSelect bool) model.CreateBookingRequest {
	return model.CreateBookingRequest{
		Booking: model.BookingData{
			RoomID:    roomID,
			DateStart: day(10),
			DateEnd:   day(15),
		},
		AutoSelect: autoSelect,
	}
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()

	type mocks struct {
		repo     *repo_mocks.MockRepository
		rooms    *service_mocks.MockRoomsClient
		enqueuer *service_mocks.MockEnqueuer
	}
	type mockBehavior func(m mocks)

	ctx := context.Background()
	user := model.User{ID: 42, Username: "ivan"}
	pending := model.Booking{ID: 1, RoomID: 7, UserID: 42, DateStart: day(10), DateEnd: day(15), Status: model.StatusPending}

	tests := []struct {
		name         string
		req          model.CreateBookingRequest
		mockBehavior mockBehavior
		wantStatus   model.Status
		wantErr      error
	}{
		{
			name: "explicit room confirmed",
			req:  newRequest(7, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return(nil, nil)
				m.repo.EXPECT().CreateBooking(ctx, model.Booking{
					RoomID: 7, UserID: 42, DateStart: day(10), DateEnd: day(15),
				}).Return(pending, nil)
				m.rooms.EXPECT().Confirm(ctx, int64(7), "tok-123").Return(true, nil)
				m.repo.EXPECT().FinishBooking(ctx, int64(1), model.StatusConfirmed).
					DoAndReturn(func(_ context.Context, id int64, st model.Status) (model.Booking, error) {
						b := pending
						b.Status = st
						return b, nil
					})
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "auto select picks first available",
			req:  newRequest(0, true),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.rooms.EXPECT().ListAvailable(ctx, "tok-123").Return([]model.Room{
					{ID: 9, Availability: false},
					{ID: 7, Availability: true, TimesBooked: 1},
					{ID: 8, Availability: true, TimesBooked: 5},
				}, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return(nil, nil)
				m.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(pending, nil)
				m.rooms.EXPECT().Confirm(ctx, int64(7), "tok-123").Return(true, nil)
				m.repo.EXPECT().FinishBooking(ctx, int64(1), model.StatusConfirmed).Return(pending, nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "no available room, nothing persisted",
			req:  newRequest(0, true),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.rooms.EXPECT().ListAvailable(ctx, "tok-123").Return([]model.Room{
					{ID: 9, Availability: false},
				}, nil)
			},
			wantErr: errs.ErrNoAvailableRoom,
		},
		{
			name: "overlap rejected before persist",
			req:  newRequest(7, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return([]model.Booking{
					{RoomID: 7, DateStart: day(12), DateEnd: day(20), Status: model.StatusConfirmed},
				}, nil)
			},
			wantErr: errs.ErrOverlap,
		},
		{
			name: "confirm error compensates and cancels",
			req:  newRequest(7, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return(nil, nil)
				m.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(pending, nil)
				m.rooms.EXPECT().Confirm(ctx, int64(7), "tok-123").Return(false, errors.New("hotel down"))
				m.rooms.EXPECT().Release(ctx, int64(7), "tok-123").Return(nil)
				m.repo.EXPECT().FinishBooking(ctx, int64(1), model.StatusCancelled).
					DoAndReturn(func(_ context.Context, id int64, st model.Status) (model.Booking, error) {
						b := pending
						b.Status = st
						return b, nil
					})
			},
			wantStatus: model.StatusCancelled,
		},
		{
			name: "confirm refused compensates and cancels",
			req:  newRequest(7, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return(nil, nil)
				m.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(pending, nil)
				m.rooms.EXPECT().Confirm(ctx, int64(7), "tok-123").Return(false, nil)
				m.rooms.EXPECT().Release(ctx, int64(7), "tok-123").Return(nil)
				m.repo.EXPECT().FinishBooking(ctx, int64(1), model.StatusCancelled).
					DoAndReturn(func(_ context.Context, id int64, st model.Status) (model.Booking, error) {
						b := pending
						b.Status = st
						return b, nil
					})
			},
			wantStatus: model.StatusCancelled,
		},
		{
			name: "failed release goes to reconcile queue",
			req:  newRequest(7, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
				m.repo.EXPECT().GetBookingsByRoom(ctx, int64(7), day(10), day(15)).Return(nil, nil)
				m.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(pending, nil)
				m.rooms.EXPECT().Confirm(ctx, int64(7), "tok-123").Return(false, errors.New("hotel down"))
				m.rooms.EXPECT().Release(ctx, int64(7), "tok-123").Return(errors.New("still down"))
				m.enqueuer.EXPECT().Enqueue(kafka.ReconcileTopic, gomock.Any()).
					DoAndReturn(func(topic string, v any) error {
						task, ok := v.(model.ReconcileTask)
						require.True(t, ok)
						require.Equal(t, int64(7), task.RoomID)
						require.Equal(t, model.OpRelease, task.Op)
						require.NotEmpty(t, task.TaskID)
						return nil
					})
				m.repo.EXPECT().FinishBooking(ctx, int64(1), model.StatusCancelled).Return(pending, nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "missing room id",
			req:  newRequest(0, false),
			mockBehavior: func(m mocks) {
				m.repo.EXPECT().GetUser(ctx, "ivan").Return(user, nil)
			},
			wantErr: errs.ErrRoomRequired,
		},
		{
			name: "inverted interval",
			req: model.CreateBookingRequest{
				Booking: model.BookingData{RoomID: 7, DateStart: day(15), DateEnd: day(10)},
			},
			mockBehavior: func(m mocks) {},
			wantErr:      errs.ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			m := mocks{
				repo:     repo_mocks.NewMockRepository(c),
				rooms:    service_mocks.NewMockRoomsClient(c),
				enqueuer: service_mocks.NewMockEnqueuer(c),
			}
			tt.mockBehavior(m)

			svc := service.NewService(m.repo, m.rooms, m.enqueuer, zap.NewExample().Named("test"))
			booking, err := svc.CreateBooking(ctx, ident, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, booking.Status)
		})
	}
}

func TestService_CancelBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("confirmed booking releases the room", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()

		repo := repo_mocks.NewMockRepository(c)
		rooms := service_mocks.NewMockRoomsClient(c)
		enq := service_mocks.NewMockEnqueuer(c)

		repo.EXPECT().GetBooking(ctx, int64(1)).Return(model.Booking{
			ID: 1, RoomID: 7, Status: model.StatusConfirmed,
		}, nil)
		repo.EXPECT().DeleteBooking(ctx, int64(1)).Return(nil)
		rooms.EXPECT().Release(ctx, int64(7), "tok-123").Return(nil)

		svc := service.NewService(repo, rooms, enq, zap.NewExample().Named("test"))
		require.NoError(t, svc.CancelBooking(ctx, ident, 1))
	})

	t.Run("cancelled booking keeps the room untouched", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()

		repo := repo_mocks.NewMockRepository(c)
		rooms := service_mocks.NewMockRoomsClient(c)
		enq := service_mocks.NewMockEnqueuer(c)

		repo.EXPECT().GetBooking(ctx, int64(1)).Return(model.Booking{
			ID: 1, RoomID: 7, Status: model.StatusCancelled,
		}, nil)
		repo.EXPECT().DeleteBooking(ctx, int64(1)).Return(nil)

		svc := service.NewService(repo, rooms, enq, zap.NewExample().Named("test"))
		require.NoError(t, svc.CancelBooking(ctx, ident, 1))
	})

	t.Run("unknown booking", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()

		repo := repo_mocks.NewMockRepository(c)
		rooms := service_mocks.NewMockRoomsClient(c)
		enq := service_mocks.NewMockEnqueuer(c)

		repo.EXPECT().GetBooking(ctx, int64(404)).Return(model.Booking{}, errs.ErrNotFound)

		svc := service.NewService(repo, rooms, enq, zap.NewExample().Named("test"))
		require.ErrorIs(t, svc.CancelBooking(ctx, ident, 404), errs.ErrNotFound)
	})
}
