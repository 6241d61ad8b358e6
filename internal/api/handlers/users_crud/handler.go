package users_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/users"
	"github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

const (
	msgInvalidUserID  = "некорректный ID пользователя"
	msgNotFound       = "пользователь не найден"
	msgRoleNotFound   = "роль не найдена"
	msgInvalidBody    = "некорректное тело запроса"
	msgDuplicateEmail = "email уже зарегистрирован"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateEmail):
			h.logger.Warn("POST /users - Duplicate email: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgDuplicateEmail)

		case errors.Is(err, users.ErrRoleNotFound):
			h.logger.Warn("POST /users - Role not found: role_id=%d", req.RoleID)
			handlers.RespondBadRequest(w, msgRoleNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /users - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}

// HandleGet GET /api/v1/users/{userId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

// HandleList GET /api/v1/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/users/{userId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateEmail):
			h.logger.Warn("PUT /users/{id} - Duplicate email: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDuplicateEmail)

		case errors.Is(err, users.ErrRoleNotFound):
			h.logger.Warn("PUT /users/{id} - Role not found: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgRoleNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id} - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, userID, err)
		}
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}

// HandleDelete DELETE /api/v1/users/{userId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		h.respondError(w, userID, err)
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted: user_id=%d", userID)
	handlers.RespondNoContent(w)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("Users - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	return userID, true
}

func (h *Handler) respondError(w http.ResponseWriter, userID int64, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		h.logger.Warn("Users - User not found: user_id=%d", userID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Users - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
	}
}
