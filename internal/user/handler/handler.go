package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/user"
	"github.com/fekuna/omnipos-restaurant-service/internal/user/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/httpx"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type UserHandler struct {
	uc     user.UseCase
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, log logger.ZapLogger) *UserHandler {
	return &UserHandler{uc: uc, logger: log}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.listUsers)
	r.Post("/", h.createUser)
	r.Get("/{userID}", h.getUser)
	r.Put("/{userID}", h.updateUser)
	r.Delete("/{userID}", h.deleteUser)
	return r
}

type userRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	u, err := h.uc.GetUser(r.Context(), id)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, u)
	case err == user.ErrUserNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("get user", zap.Int64("user_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching user")
	}
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.uc.CreateUser(r.Context(), &dto.CreateUserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Password:  req.Password,
	})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, u)
	case err == user.ErrUsernameTaken:
		httpx.WriteMessage(w, http.StatusConflict, "Username already exists")
	default:
		h.logger.Error("create user", zap.Error(err))
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	}
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.uc.UpdateUser(r.Context(), &dto.UpdateUserInput{
		ID:        id,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Password:  req.Password,
	})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, u)
	case err == user.ErrUserNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case err == user.ErrUsernameTaken:
		httpx.WriteMessage(w, http.StatusConflict, "Username already exists")
	default:
		h.logger.Error("update user", zap.Int64("user_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	}
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	err := h.uc.DeleteUser(r.Context(), id)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, "User deleted successfully")
	case err == user.ErrUserNotFound:
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("delete user", zap.Int64("user_id", id), zap.Error(err))
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error deleting user")
	}
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}
