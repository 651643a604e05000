package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/internal/table/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type TableHandler struct {
	uc     table.UseCase
	logger logger.ZapLogger
}

func NewTableHandler(uc table.UseCase, log logger.ZapLogger) *TableHandler {
	return &TableHandler{uc: uc, logger: log}
}

func (h *TableHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listTables)
	r.Post("/", h.createTable)
	r.Get("/{tableID}", h.getTable)
	r.Put("/{tableID}", h.updateTable)
	r.Delete("/{tableID}", h.deleteTable)
	return r
}

type tableRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (h *TableHandler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.uc.ListTables(r.Context())
	if err != nil {
		h.logger.Error("list tables", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching tables")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tables)
}

func (h *TableHandler) getTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}

	t, err := h.uc.GetTable(r.Context(), id)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, t)
	case err == table.ErrTableNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "Table not found")
	default:
		h.logger.Error("get table", zap.Int64("table_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching table")
	}
}

func (h *TableHandler) createTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Table name is required")
		return
	}

	t, err := h.uc.CreateTable(r.Context(), &dto.CreateTableInput{Name: req.Name, Status: req.Status})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, t)
	case err == table.ErrTableNameTaken:
		httpx.WriteMessage(w, http.StatusConflict, "A table with this name already exists")
	default:
		h.logger.Error("create table", zap.Error(err))
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	}
}

func (h *TableHandler) updateTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}

	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.uc.UpdateTable(r.Context(), &dto.UpdateTableInput{ID: id, Name: req.Name, Status: req.Status})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, t)
	case err == table.ErrTableNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "Table not found")
	case err == table.ErrTableNameTaken:
		httpx.WriteMessage(w, http.StatusConflict, "A table with this name already exists")
	default:
		h.logger.Error("update table", zap.Int64("table_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	}
}

func (h *TableHandler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(w, r)
	if !ok {
		return
	}

	err := h.uc.DeleteTable(r.Context(), id)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, "Table deleted successfully")
	case err == table.ErrTableNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "Table not found")
	default:
		h.logger.Error("delete table", zap.Int64("table_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error deleting table")
	}
}

func tableID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tableID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid table ID")
		return 0, false
	}
	return id, true
}
