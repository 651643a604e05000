package inventory

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

// Ledger exposes recipe lookup and the conditional stock deduction. The
// deduction is the only mutation: a single conditional statement that never
// takes stock below zero. Implementations run against whatever executor they
// are bound to, so the order store can bind a Ledger to its transaction.
type Ledger interface {
	// GetRecipe returns the ingredients consumed per unit sold of a menu
	// item. An empty slice means the item has no recipe defined.
	GetRecipe(ctx context.Context, menuItemID int64) ([]model.RecipeEntry, error)

	// DeductStock decrements current_stock by quantity only when enough
	// stock remains, as one indivisible update. Returns the number of rows
	// affected: 0 when stock is insufficient or the ingredient is unknown,
	// 1 on success. Insufficient stock is not an error here; callers
	// interpret the zero result.
	DeductStock(ctx context.Context, invItemID int64, quantity float64) (int64, error)
}

// StockReader serves the read-only stock listing for the admin UI.
type StockReader interface {
	ListItems(ctx context.Context) ([]model.InventoryItem, error)
}
