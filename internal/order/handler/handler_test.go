package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type stubUseCase struct {
	placeResult *dto.PlaceOrderResult
	placeErr    error
	completeErr error
	payBill     *model.BillingDetails
	payErr      error
	detailsErr  error
}

func (s *stubUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*dto.PlaceOrderResult, error) {
	return s.placeResult, s.placeErr
}

func (s *stubUseCase) CompleteOrder(ctx context.Context, orderID int64) error {
	return s.completeErr
}

func (s *stubUseCase) ProcessPayment(ctx context.Context, orderID int64, paymentMethod string) (*model.BillingDetails, error) {
	return s.payBill, s.payErr
}

func (s *stubUseCase) GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	return nil, s.detailsErr
}

func newTestRouter(uc order.UseCase) chi.Router {
	r := chi.NewRouter()
	r.Mount("/api/orders", NewOrderHandler(uc, logger.NewNop()).Routes())
	return r
}

func doRequest(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrder_Created(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		placeResult: &dto.PlaceOrderResult{OrderID: 7, Message: "Order 7 placed successfully."},
	})

	body := `{"table_id":1,"waiter_id":2,"items":[{"menu_item_id":5,"quantity":2,"unit_price_at_sale":10.0}]}`
	rec := doRequest(t, router, http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Success bool  `json:"success"`
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.OrderID)
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	rec := doRequest(t, router, http.MethodPost, "/api/orders", `{"table_id":1,"waiter_id":2,"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrder_InvalidItem(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	body := `{"table_id":1,"waiter_id":2,"items":[{"menu_item_id":5,"quantity":2}]}`
	rec := doRequest(t, router, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteOrder_NotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(&stubUseCase{completeErr: order.ErrOrderNotFound})

	rec := doRequest(t, router, http.MethodPost, "/api/orders/42/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteOrder_InsufficientStockMapsTo409(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		completeErr: &order.InsufficientStockError{InvItemID: 200, Required: 3},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/orders/42/complete", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient stock")
}

func TestCompleteOrder_RecipeMissingMapsTo500(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		completeErr: &order.RecipeMissingError{MenuItemID: 5},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/orders/42/complete", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProcessPayment_MissingMethod(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	rec := doRequest(t, router, http.MethodPost, "/api/orders/42/pay", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPayment_ReturnsBill(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		payBill: &model.BillingDetails{
			OrderID:     42,
			FinalAmount: 25.00,
			Status:      model.OrderStatusPaid,
			Items: []model.BillingItem{
				{MenuItemName: "Margherita", Quantity: 2, UnitPriceAtSale: 10.00},
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/orders/42/pay", `{"paymentMethod":"Card"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Bill    struct {
			FinalAmount float64 `json:"final_amount"`
		} `json:"bill"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 25.00, resp.Bill.FinalAmount)
}

func TestGetOrderDetails_InvalidID(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	rec := doRequest(t, router, http.MethodGet, "/api/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderDetails_NotFound(t *testing.T) {
	router := newTestRouter(&stubUseCase{detailsErr: order.ErrOrderNotFound})

	rec := doRequest(t, router, http.MethodGet, "/api/orders/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
