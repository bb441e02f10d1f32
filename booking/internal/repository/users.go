package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/booking/internal/errs"
	"github.com/nborodulin471/booking-system/booking/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	q, args, err := qb.Insert(userTableName).
		Columns("username", "password", "email", "role").
		Values(user.Username, user.Password, user.Email, user.Role).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrUserExists
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "username", "password", "email", "role").
		From(userTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
