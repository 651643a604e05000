package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type MenuHandler struct {
	uc     menu.UseCase
	logger logger.ZapLogger
}

func NewMenuHandler(uc menu.UseCase, log logger.ZapLogger) *MenuHandler {
	return &MenuHandler{uc: uc, logger: log}
}

func (h *MenuHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListItems)
	r.Post("/", h.CreateItem)
	r.Put("/{itemID}", h.UpdateItem)
	r.Delete("/{itemID}", h.DeleteItem)
	return r
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable *bool   `json:"is_available"`
}

func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu items", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to retrieve menu items.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.Name == "" || req.Price <= 0 || req.Category == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Name, Price, and Category are required.")
		return
	}

	item, err := h.uc.CreateItem(r.Context(), &dto.CreateMenuItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, menu.ErrUnknownCategory) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid category name: "+req.Category)
			return
		}
		h.logger.Error("failed to create menu item", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to create menu item.")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Menu item created successfully.",
		"item_id": item.ID,
	})
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	_, err := h.uc.UpdateItem(r.Context(), &dto.UpdateMenuItemInput{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrItemNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, "Menu item not found.")
		case errors.Is(err, menu.ErrUnknownCategory):
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid category name: "+req.Category)
		default:
			h.logger.Error("failed to update menu item", zap.Int64("item_id", id), zap.Error(err))
			httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to update menu item.")
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Menu item updated successfully.")
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.uc.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Menu item not found.")
			return
		}
		h.logger.Error("failed to delete menu item", zap.Int64("item_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Failed to delete menu item.")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Menu item deleted successfully.")
}

func (h *MenuHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid menu item ID.")
		return 0, false
	}
	return id, true
}
