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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	query := `SELECT item_id, name, price, category_id, is_available FROM menuitems ORDER BY item_id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, errors.Wrap(err, "list menu items")
	}
	return items, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	var item model.MenuItem
	query := `SELECT item_id, name, price, category_id, is_available FROM menuitems WHERE item_id = $1`
	err := r.DB.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get menu item %d", id)
	}
	return &item, nil
}

func (r *PGRepository) Create(ctx context.Context, item *model.MenuItem) (int64, error) {
	var id int64
	query := `
        INSERT INTO menuitems (name, price, category_id, is_available)
        VALUES ($1, $2, $3, $4)
        RETURNING item_id
    `
	err := r.DB.QueryRowxContext(ctx, query, item.Name, item.Price, item.CategoryID, item.IsAvailable).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert menu item")
	}
	return id, nil
}

func (r *PGRepository) Update(ctx context.Context, item *model.MenuItem) (int64, error) {
	query := `
        UPDATE menuitems
        SET name = $2, price = $3, category_id = $4, is_available = $5
        WHERE item_id = $1
    `
	res, err := r.DB.ExecContext(ctx, query, item.ID, item.Name, item.Price, item.CategoryID, item.IsAvailable)
	if err != nil {
		return 0, errors.Wrapf(err, "update menu item %d", item.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM menuitems WHERE item_id = $1`, id)
	if err != nil {
		return 0, errors.Wrapf(err, "delete menu item %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}
