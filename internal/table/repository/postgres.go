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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Table, error) {
	tables := []model.Table{}
	query := `SELECT table_id, name, status FROM tables ORDER BY table_id`
	if err := r.DB.SelectContext(ctx, &tables, query); err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	return tables, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Table, error) {
	var t model.Table
	err := r.DB.GetContext(ctx, &t, `SELECT table_id, name, status FROM tables WHERE table_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get table %d", id)
	}
	return &t, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Table, error) {
	var t model.Table
	err := r.DB.GetContext(ctx, &t, `SELECT table_id, name, status FROM tables WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get table by name %q", name)
	}
	return &t, nil
}

func (r *PGRepository) Create(ctx context.Context, t *model.Table) (int64, error) {
	var id int64
	query := `INSERT INTO tables (name, status) VALUES ($1, $2) RETURNING table_id`
	if err := r.DB.QueryRowxContext(ctx, query, t.Name, t.Status).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "insert table")
	}
	return id, nil
}

func (r *PGRepository) Update(ctx context.Context, t *model.Table) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE tables SET name = $2, status = $3 WHERE table_id = $1`,
		t.ID, t.Name, t.Status)
	if err != nil {
		return 0, errors.Wrapf(err, "update table %d", t.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tables WHERE table_id = $1`, id)
	if err != nil {
		return 0, errors.Wrapf(err, "delete table %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}
