package repository_test

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
	"github.com/nborodulin471/booking-system/booking/internal/repository"
)

var bookingColumns = []string{"id", "room_id", "user_id", "date_start", "date_end", "status", "created_at"}

func newRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, repository.Repository) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo, err := repository.NewRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)
	return db, mock, repo
}

func TestRepository_FinishBooking(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("pending moves to terminal", func(t *testing.T) {
		t.Parallel()
		_, mock, repo := newRepo(t)
		mock.ExpectQuery("update bookings").
			WithArgs(int64(1), "CONFIRMED").
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(int64(1), int64(7), int64(42), start, end, "CONFIRMED", start))

		booking, err := repo.FinishBooking(context.Background(), 1, model.StatusConfirmed)
		require.NoError(t, err)
		require.Equal(t, model.StatusConfirmed, booking.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("terminal status is sticky", func(t *testing.T) {
		t.Parallel()
		_, mock, repo := newRepo(t)
		// attempting to confirm an already cancelled booking keeps CANCELLED
		// and must not surface as not-found
		mock.ExpectQuery("update bookings").
			WithArgs(int64(1), "CONFIRMED").
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(int64(1), int64(7), int64(42), start, end, "CANCELLED", start))

		booking, err := repo.FinishBooking(context.Background(), 1, model.StatusConfirmed)
		require.NoError(t, err)
		require.Equal(t, model.StatusCancelled, booking.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		_, mock, repo := newRepo(t)
		mock.ExpectQuery("update bookings").
			WithArgs(int64(404), "CANCELLED").
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.FinishBooking(context.Background(), 404, model.StatusCancelled)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
