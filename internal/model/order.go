package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusPaid      OrderStatus = "Paid"
)

type Order struct {
	ID            int64       `db:"order_id" json:"order_id"`
	TableID       int64       `db:"table_id" json:"table_id"`
	WaiterID      int64       `db:"waiter_id" json:"waiter_id"`
	FinalAmount   float64     `db:"final_amount" json:"final_amount"`
	TotalTax      float64     `db:"total_tax" json:"total_tax"`
	TotalDiscount float64     `db:"total_discount" json:"total_discount"`
	Status        OrderStatus `db:"status" json:"status"`
	PaymentMethod *string     `db:"payment_method" json:"payment_method"`
	OrderDate     time.Time   `db:"order_date" json:"order_date"`
}

type OrderItem struct {
	ID              int64   `db:"order_item_id" json:"order_item_id"`
	OrderID         int64   `db:"order_id" json:"order_id"`
	MenuItemID      int64   `db:"menu_item_id" json:"menu_item_id"`
	Quantity        int     `db:"quantity" json:"quantity"`
	UnitPriceAtSale float64 `db:"unit_price_at_sale" json:"unit_price_at_sale"`
}

// BillingDetails is the invoice projection returned after payment: the order
// header joined with its line items and menu item names.
type BillingDetails struct {
	OrderID       int64         `db:"order_id" json:"order_id"`
	TableID       int64         `db:"table_id" json:"table_id"`
	FinalAmount   float64       `db:"final_amount" json:"final_amount"`
	TotalTax      float64       `db:"total_tax" json:"total_tax"`
	TotalDiscount float64       `db:"total_discount" json:"total_discount"`
	Status        OrderStatus   `db:"status" json:"status"`
	OrderDate     time.Time     `db:"order_date" json:"order_date"`
	Items         []BillingItem `db:"-" json:"items"`
}

type BillingItem struct {
	MenuItemName    string  `db:"menu_item_name" json:"menu_item_name"`
	Quantity        int     `db:"quantity" json:"quantity"`
	UnitPriceAtSale float64 `db:"unit_price_at_sale" json:"unit_price_at_sale"`
}

// OrderDetails is the read projection served by GET /api/orders/{id}.
type OrderDetails struct {
	ID        int64              `json:"id"`
	Total     float64            `json:"total"`
	Status    OrderStatus        `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []OrderDetailsItem `json:"items"`
}

type OrderDetailsItem struct {
	ID          int64   `db:"order_item_id" json:"id"`
	MenuItemID  int64   `db:"menu_item_id" json:"menu_item_id"`
	Quantity    int     `db:"quantity" json:"quantity"`
	PriceAtTime float64 `db:"unit_price_at_sale" json:"price_at_time"`
}
