package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound covers both a missing order and an order with zero
	// items; the store intentionally reports one signal for both.
	ErrOrderNotFound = errors.New("order not found or contains no items")

	ErrNoItems = errors.New("order must contain at least one item")

	ErrPaymentMethodRequired = errors.New("payment method is required")

	// ErrBillingUnavailable means the post-payment billing read found
	// nothing, which should not happen after a successful status update.
	ErrBillingUnavailable = errors.New("billing details unavailable")
)

// RecipeMissingError aborts completion: without a recipe the inventory
// deduction cannot proceed.
type RecipeMissingError struct {
	MenuItemID int64
}

func (e *RecipeMissingError) Error() string {
	return fmt.Sprintf("recipe not found for menu item %d, cannot deduct inventory", e.MenuItemID)
}

// InsufficientStockError identifies the ingredient that could not be
// deducted and the quantity the order required.
type InsufficientStockError struct {
	InvItemID int64
	Required  float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for inventory item %d, required %.2f", e.InvItemID, e.Required)
}
