package model

// RecipeEntry maps a menu item to one inventory ingredient and the quantity
// consumed per unit sold. Read-only from the workflow's perspective.
type RecipeEntry struct {
	MenuItemID   int64   `db:"menu_item_id" json:"menu_item_id"`
	InvItemID    int64   `db:"inv_item_id" json:"inv_item_id"`
	QuantityUsed float64 `db:"quantity_used" json:"quantity_used"`
}

type InventoryItem struct {
	ID           int64   `db:"inv_item_id" json:"inv_item_id"`
	Name         string  `db:"name" json:"name"`
	CurrentStock float64 `db:"current_stock" json:"current_stock"`
}
