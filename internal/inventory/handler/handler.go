package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/inventory"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

// InventoryHandler exposes the read-only stock view used by the admin UI.
type InventoryHandler struct {
	stock  inventory.StockReader
	logger logger.ZapLogger
}

func NewInventoryHandler(stock inventory.StockReader, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{stock: stock, logger: log}
}

func (h *InventoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listItems)
	return r
}

func (h *InventoryHandler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.stock.ListItems(r.Context())
	if err != nil {
		h.logger.Error("list inventory", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching inventory")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
