package order

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

// UseCase is the order workflow engine. Orders move Pending -> Completed
// -> Paid; each transition is one atomic unit against the store.
type UseCase interface {
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*dto.PlaceOrderResult, error)
	CompleteOrder(ctx context.Context, orderID int64) error
	ProcessPayment(ctx context.Context, orderID int64, paymentMethod string) (*model.BillingDetails, error)
	GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error)
}
