package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	query := `SELECT user_id, username, first_name, last_name, role, password FROM users ORDER BY user_id`
	if err := r.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u,
		`SELECT user_id, username, first_name, last_name, role, password FROM users WHERE user_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	return &u, nil
}

func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u,
		`SELECT user_id, username, first_name, last_name, role, password FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get user by username %q", username)
	}
	return &u, nil
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) (int64, error) {
	var id int64
	query := `INSERT INTO users (username, first_name, last_name, role, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id`
	err := r.DB.QueryRowxContext(ctx, query,
		u.Username, u.FirstName, u.LastName, u.Role, u.PasswordHash).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert user")
	}
	return id, nil
}

func (r *PGRepository) Update(ctx context.Context, u *model.User) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET username = $2, first_name = $3, last_name = $4, role = $5, password = $6
		 WHERE user_id = $1`,
		u.ID, u.Username, u.FirstName, u.LastName, u.Role, u.PasswordHash)
	if err != nil {
		return 0, errors.Wrapf(err, "update user %d", u.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return 0, errors.Wrapf(err, "delete user %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}
