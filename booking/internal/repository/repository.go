package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	FinishBooking(ctx context.Context, id int64, status model.Status) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	GetBookings(ctx context.Context, userID int64) ([]model.Booking, error)
	GetBookingsByRoom(ctx context.Context, roomID int64, from, till time.Time) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error

	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, username string) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookingTableName = `bookings`
	userTableName    = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CreateBooking persists a PENDING booking. The conflict check runs inside the
// same transaction under a per-room advisory lock, so two requests for the same
// room serialize between check and insert. The exclusion constraint on
// (room_id, tstzrange) backstops the same invariant at the schema level.
func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `select pg_advisory_xact_lock($1)`, booking.RoomID); err != nil {
		return model.Booking{}, errors.Wrap(err, "room lock")
	}

	q, args, err := qb.Select("count(1)").
		From(bookingTableName).
		Where(sq.Eq{"room_id": booking.RoomID}).
		Where(sq.NotEq{"status": model.StatusCancelled}).
		Where(sq.Lt{"date_start": booking.DateEnd}).
		Where(sq.Gt{"date_end": booking.DateStart}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var conflicts int
	if err := tx.GetContext(ctx, &conflicts, q, args...); err != nil {
		return model.Booking{}, err
	}
	if conflicts > 0 {
		return model.Booking{}, errs.ErrOverlap
	}

	q, args, err = qb.Insert(bookingTableName).
		Columns("room_id", "user_id", "date_start", "date_end", "status").
		Values(booking.RoomID, booking.UserID, booking.DateStart, booking.DateEnd, model.StatusPending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := tx.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return model.Booking{}, errs.ErrOverlap
		}
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	return res, nil
}

// FinishBooking moves a PENDING booking to its terminal status. Terminal
// states are sticky: a booking that already left PENDING keeps its status and
// is returned as-is. Only a missing row is ErrNotFound.
func (r *repository) FinishBooking(ctx context.Context, id int64, status model.Status) (model.Booking, error) {
	q := `update bookings
	set status = case when status = 'PENDING' then $2 else status end
	where id = $1
	returning *`

	var res model.Booking
	if err := r.db.GetContext(ctx, &res, q, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return res, nil
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	q, args, err := qb.Select("id", "room_id", "user_id", "date_start", "date_end", "status", "created_at").
		From(bookingTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return res, nil
}

func (r *repository) GetBookings(ctx context.Context, userID int64) ([]model.Booking, error) {
	q, args, err := qb.Select("id", "room_id", "user_id", "date_start", "date_end", "status", "created_at").
		From(bookingTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// GetBookingsByRoom returns bookings for the room whose interval touches the
// coarse [from, till] window. The caller applies the exact overlap predicate
// and the cancellation filter.
func (r *repository) GetBookingsByRoom(ctx context.Context, roomID int64, from, till time.Time) ([]model.Booking, error) {
	q, args, err := qb.Select("id", "room_id", "user_id", "date_start", "date_end", "status", "created_at").
		From(bookingTableName).
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.LtOrEq{"date_start": till}).
		Where(sq.GtOrEq{"date_end": from}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DeleteBooking(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(bookingTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
