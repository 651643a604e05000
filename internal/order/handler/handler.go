package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.PlaceOrder)
	r.Get("/{orderID}", h.GetOrderDetails)
	r.Post("/{orderID}/complete", h.CompleteOrder)
	r.Post("/{orderID}/pay", h.ProcessPayment)
	return r
}

type placeOrderRequest struct {
	TableID       int64            `json:"table_id"`
	WaiterID      int64            `json:"waiter_id"`
	TotalTax      float64          `json:"total_tax"`
	TotalDiscount float64          `json:"total_discount"`
	Status        string           `json:"status"`
	Items         []placeOrderItem `json:"items"`
}

type placeOrderItem struct {
	MenuItemID      int64    `json:"menu_item_id"`
	Quantity        int      `json:"quantity"`
	UnitPriceAtSale *float64 `json:"unit_price_at_sale"`
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type workflowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type paymentResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Bill    *model.BillingDetails `json:"bill"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if req.TableID == 0 || req.WaiterID == 0 || len(req.Items) == 0 {
		httpx.WriteMessage(w, http.StatusBadRequest,
			"Missing required fields (table_id, waiter_id) or missing order items array.")
		return
	}
	for _, item := range req.Items {
		if item.MenuItemID == 0 || item.Quantity <= 0 || item.UnitPriceAtSale == nil || *item.UnitPriceAtSale < 0 {
			httpx.WriteMessage(w, http.StatusBadRequest,
				"Each item must have a menu_item_id, a positive quantity, and a unit_price_at_sale.")
			return
		}
	}

	input := &dto.PlaceOrderInput{
		TableID:       req.TableID,
		WaiterID:      req.WaiterID,
		TotalTax:      req.TotalTax,
		TotalDiscount: req.TotalDiscount,
		Status:        req.Status,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, dto.PlaceOrderItem{
			MenuItemID:      item.MenuItemID,
			Quantity:        item.Quantity,
			UnitPriceAtSale: *item.UnitPriceAtSale,
		})
	}

	result, err := h.uc.PlaceOrder(r.Context(), input)
	if err != nil {
		if errors.Is(err, order.ErrNoItems) {
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to place order", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to place new order.")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, placeOrderResponse{
		Success: true,
		Message: result.Message,
		OrderID: result.OrderID,
	})
}

func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.uc.CompleteOrder(r.Context(), orderID); err != nil {
		var stockErr *order.InsufficientStockError
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, workflowResponse{Success: false, Message: err.Error()})
		case errors.As(err, &stockErr):
			httpx.WriteJSON(w, http.StatusConflict, workflowResponse{Success: false, Message: stockErr.Error()})
		default:
			h.logger.Error("failed to complete order", zap.Int64("order_id", orderID), zap.Error(err))
			httpx.WriteJSON(w, http.StatusInternalServerError, workflowResponse{
				Success: false,
				Message: "Internal Server Error: Could not process order completion.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, workflowResponse{
		Success: true,
		Message: "Order completed and inventory deducted.",
	})
}

func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.PaymentMethod == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Payment method is required.")
		return
	}

	bill, err := h.uc.ProcessPayment(r.Context(), orderID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrPaymentMethodRequired):
			httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, workflowResponse{Success: false, Message: err.Error()})
		default:
			h.logger.Error("failed to process payment", zap.Int64("order_id", orderID), zap.Error(err))
			httpx.WriteJSON(w, http.StatusInternalServerError, workflowResponse{
				Success: false,
				Message: "Internal Server Error: Could not process payment.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentResponse{
		Success: true,
		Message: "Order successfully paid via " + req.PaymentMethod + ".",
		Bill:    bill,
	})
}

func (h *OrderHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	details, err := h.uc.GetOrderDetails(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Order not found.")
			return
		}
		h.logger.Error("failed to fetch order details", zap.Int64("order_id", orderID), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to fetch order details.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, details)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid order ID.")
		return 0, false
	}
	return id, true
}
