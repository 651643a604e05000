package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/events"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type orderUseCase struct {
	repo   order.Repository
	events events.Publisher
	logger logger.ZapLogger
}

// NewOrderUseCase builds the workflow engine. publisher may be nil to
// disable event emission.
func NewOrderUseCase(repo order.Repository, publisher events.Publisher, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		events: publisher,
		logger: log,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*dto.PlaceOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, order.ErrNoItems
	}

	// The final amount is the plain sum over the supplied sale prices,
	// frozen at placement; tax and discount pass through as metadata.
	var finalAmount float64
	for _, item := range input.Items {
		finalAmount += float64(item.Quantity) * item.UnitPriceAtSale
	}

	header := &model.Order{
		TableID:       input.TableID,
		WaiterID:      input.WaiterID,
		FinalAmount:   finalAmount,
		TotalTax:      input.TotalTax,
		TotalDiscount: input.TotalDiscount,
		Status:        model.OrderStatus(input.Status),
	}

	var orderID int64
	err := uc.repo.InTx(ctx, func(tx order.TxOps) error {
		id, err := tx.CreateOrder(ctx, header)
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, model.OrderItem{
				MenuItemID:      item.MenuItemID,
				Quantity:        item.Quantity,
				UnitPriceAtSale: item.UnitPriceAtSale,
			})
		}
		if err := tx.CreateOrderItems(ctx, id, items); err != nil {
			return err
		}

		orderID = id
		return nil
	})
	if err != nil {
		uc.logger.Error("place order transaction failed", zap.Error(err))
		return nil, err
	}

	uc.publish(ctx, events.TypeOrderPlaced, events.OrderPayload{
		OrderID:     orderID,
		Status:      string(model.OrderStatusPending),
		FinalAmount: finalAmount,
	})

	return &dto.PlaceOrderResult{
		OrderID: orderID,
		Message: fmt.Sprintf("Order %d placed successfully.", orderID),
	}, nil
}

func (uc *orderUseCase) CompleteOrder(ctx context.Context, orderID int64) error {
	err := uc.repo.InTx(ctx, func(tx order.TxOps) error {
		items, err := tx.GetOrderItems(ctx, orderID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return order.ErrOrderNotFound
		}

		for _, item := range items {
			recipe, err := tx.GetRecipe(ctx, item.MenuItemID)
			if err != nil {
				return err
			}
			if len(recipe) == 0 {
				return &order.RecipeMissingError{MenuItemID: item.MenuItemID}
			}

			for _, ingredient := range recipe {
				required := ingredient.QuantityUsed * float64(item.Quantity)
				affected, err := tx.DeductStock(ctx, ingredient.InvItemID, required)
				if err != nil {
					return err
				}
				if affected == 0 {
					return &order.InsufficientStockError{
						InvItemID: ingredient.InvItemID,
						Required:  required,
					}
				}
			}
		}

		_, err = tx.UpdateOrderStatus(ctx, orderID, model.OrderStatusCompleted, nil)
		return err
	})
	if err != nil {
		uc.logger.Error("complete order transaction failed",
			zap.Int64("order_id", orderID), zap.Error(err))
		return err
	}

	uc.publish(ctx, events.TypeOrderCompleted, events.OrderPayload{
		OrderID: orderID,
		Status:  string(model.OrderStatusCompleted),
	})
	return nil
}

func (uc *orderUseCase) ProcessPayment(ctx context.Context, orderID int64, paymentMethod string) (*model.BillingDetails, error) {
	if paymentMethod == "" {
		return nil, order.ErrPaymentMethodRequired
	}

	err := uc.repo.InTx(ctx, func(tx order.TxOps) error {
		affected, err := tx.UpdateOrderStatus(ctx, orderID, model.OrderStatusPaid, &paymentMethod)
		if err != nil {
			return err
		}
		if affected == 0 {
			return order.ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("process payment transaction failed",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	// Billing is a pure read of committed state, deliberately outside the
	// payment transaction.
	bill, err := uc.repo.GetBillingDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, order.ErrBillingUnavailable
	}

	uc.publish(ctx, events.TypeOrderPaid, events.OrderPayload{
		OrderID:       orderID,
		Status:        string(model.OrderStatusPaid),
		FinalAmount:   bill.FinalAmount,
		PaymentMethod: paymentMethod,
	})
	return bill, nil
}

func (uc *orderUseCase) GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	details, err := uc.repo.GetOrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, order.ErrOrderNotFound
	}
	return details, nil
}

func (uc *orderUseCase) publish(ctx context.Context, eventType string, payload events.OrderPayload) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, eventType, payload); err != nil {
		uc.logger.Error("failed to publish order event",
			zap.String("event_type", eventType),
			zap.Int64("order_id", payload.OrderID),
			zap.Error(err))
	}
}
