package order

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/inventory"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

// TxOps is the set of store operations available inside one atomic unit.
// The embedded inventory ledger is bound to the same transaction, so a
// failed completion reverts every deduction attempted before the failure.
type TxOps interface {
	// CreateOrder inserts the order header and returns the assigned id.
	// Status defaults to Pending when unset.
	CreateOrder(ctx context.Context, o *model.Order) (int64, error)

	// CreateOrderItems bulk-inserts line items for orderID.
	CreateOrderItems(ctx context.Context, orderID int64, items []model.OrderItem) error

	// GetOrderItems returns the line items of an order. An empty slice
	// covers both "order missing" and "order has zero items".
	GetOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// UpdateOrderStatus sets the status, recording paymentMethod only when
	// the new status is Paid. Returns the number of rows matched.
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, paymentMethod *string) (int64, error)

	inventory.Ledger
}

// Repository is the order store. InTx runs fn inside one transaction:
// any error rolls back every write, including stock deductions.
type Repository interface {
	InTx(ctx context.Context, fn func(tx TxOps) error) error

	// GetBillingDetails is a read-only invoice projection joining the order
	// header, items and menu item names. Returns nil when the order is
	// absent.
	GetBillingDetails(ctx context.Context, orderID int64) (*model.BillingDetails, error)

	// GetOrderDetails backs GET /api/orders/{id}. Returns nil when absent.
	GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error)
}
