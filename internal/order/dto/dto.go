package dto

type PlaceOrderResult struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}
