package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/internal/errs"
	"github.com/nborodulin471/booking-system/hotel/internal/model"
)

type Repository interface {
	CreateHotel(ctx context.Context, hotel model.Hotel) (model.Hotel, error)
	ListHotels(ctx context.Context) ([]model.Hotel, error)
	GetHotel(ctx context.Context, id int64) (model.Hotel, error)

	CreateRoom(ctx context.Context, room model.Room) (model.Room, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	ListAvailableRooms(ctx context.Context) ([]model.Room, error)
	ListRecommendedRooms(ctx context.Context) ([]model.Room, error)
	ConfirmAvailability(ctx context.Context, id int64) (bool, error)
	ReleaseRoom(ctx context.Context, id int64) error
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
	hotelTableName = `hotels`
	roomTableName  = `rooms`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateHotel(ctx context.Context, hotel model.Hotel) (model.Hotel, error) {
	q, args, err := qb.Insert(hotelTableName).
		Columns("name", "address").
		Values(hotel.Name, hotel.Address).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Hotel{}, err
	}
	var res model.Hotel
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Hotel{}, errs.ErrHotelExists
		}
		return model.Hotel{}, err
	}
	return res, nil
}

func (r *repository) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	q, args, err := qb.Select("id", "name", "address").
		From(hotelTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Hotel
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetHotel(ctx context.Context, id int64) (model.Hotel, error) {
	q, args, err := qb.Select("id", "name", "address").
		From(hotelTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Hotel{}, err
	}
	var res model.Hotel
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Hotel{}, errs.ErrNotFound
		}
		return model.Hotel{}, err
	}
	return res, nil
}

func (r *repository) CreateRoom(ctx context.Context, room model.Room) (model.Room, error) {
	if _, err := r.GetHotel(ctx, room.HotelID); err != nil {
		return model.Room{}, err
	}
	q, args, err := qb.Insert(roomTableName).
		Columns("hotel_id", "number", "available", "times_booked").
		Values(room.HotelID, room.Number, true, 0).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Room{}, err
	}
	var res model.Room
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Room{}, errs.ErrRoomExists
		}
		r.log.Error("CreateRoom", zap.String("q", q), zap.Any("args", args))
		return model.Room{}, err
	}
	return res, nil
}

func (r *repository) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	q, args, err := qb.Select("id", "hotel_id", "number", "available", "times_booked").
		From(roomTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Room{}, err
	}
	var res model.Room
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, errs.ErrNotFound
		}
		return model.Room{}, err
	}
	return res, nil
}

func (r *repository) ListAvailableRooms(ctx context.Context) ([]model.Room, error) {
	return r.listRooms(ctx, "id")
}

// ListRecommendedRooms orders least-used-first, ids breaking ties, which is
// the contract auto-select consumers rely on.
func (r *repository) ListRecommendedRooms(ctx context.Context) ([]model.Room, error) {
	return r.listRooms(ctx, "times_booked asc", "id asc")
}

func (r *repository) listRooms(ctx context.Context, orderBy ...string) ([]model.Room, error) {
	q, args, err := qb.Select("id", "hotel_id", "number", "available", "times_booked").
		From(roomTableName).
		Where(sq.Eq{"available": true}).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Room
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// ConfirmAvailability flips the room to unavailable and bumps its counter in a
// single conditional update, so two confirms cannot both win.
func (r *repository) ConfirmAvailability(ctx context.Context, id int64) (bool, error) {
	q := `update rooms
	set available = false, times_booked = times_booked + 1
	where id = $1 and available
	returning id`

	var roomID int64
	err := r.db.QueryRowContext(ctx, q, id).Scan(&roomID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	// Either the room does not exist or it is already taken.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `select exists(select 1 from rooms where id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, errs.ErrNotFound
	}
	return false, nil
}

func (r *repository) ReleaseRoom(ctx context.Context, id int64) error {
	q := `update rooms
	set available = true, times_booked = greatest(times_booked - 1, 0)
	where id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
