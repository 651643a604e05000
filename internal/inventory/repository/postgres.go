package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

// PGLedger runs against any sqlx executor, which lets the order store bind
// it to an open transaction for the completion workflow.
type PGLedger struct {
	ext sqlx.ExtContext
}

func NewPGLedger(ext sqlx.ExtContext) *PGLedger {
	return &PGLedger{ext: ext}
}

func (r *PGLedger) GetRecipe(ctx context.Context, menuItemID int64) ([]model.RecipeEntry, error) {
	entries := []model.RecipeEntry{}
	query := `SELECT menu_item_id, inv_item_id, quantity_used FROM recipes WHERE menu_item_id = $1`
	if err := sqlx.SelectContext(ctx, r.ext, &entries, query, menuItemID); err != nil {
		return nil, errors.Wrapf(err, "get recipe for menu item %d", menuItemID)
	}
	return entries, nil
}

func (r *PGLedger) DeductStock(ctx context.Context, invItemID int64, quantity float64) (int64, error) {
	// Check and decrement in one statement; no read-then-write window.
	query := `
        UPDATE inventory_items
        SET current_stock = current_stock - $2
        WHERE inv_item_id = $1 AND current_stock >= $2
    `
	res, err := r.ext.ExecContext(ctx, query, invItemID, quantity)
	if err != nil {
		return 0, errors.Wrapf(err, "deduct stock for inventory item %d", invItemID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

// ListItems returns current stock levels for the admin stock view.
func (r *PGLedger) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	query := `SELECT inv_item_id, name, current_stock FROM inventory_items ORDER BY inv_item_id`
	if err := sqlx.SelectContext(ctx, r.ext, &items, query); err != nil {
		return nil, errors.Wrap(err, "list inventory items")
	}
	return items, nil
}
