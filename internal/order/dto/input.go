package dto

type PlaceOrderInput struct {
	TableID       int64
	WaiterID      int64
	TotalTax      float64
	TotalDiscount float64
	// Status overrides the Pending default when set. Explicit default
	// policy: omitted -> "Pending".
	Status string
	Items  []PlaceOrderItem
}

type PlaceOrderItem struct {
	MenuItemID      int64
	Quantity        int
	UnitPriceAtSale float64
}
