package roles_crud

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
	msgInvalidRoleID = "некорректный ID роли"
	msgNotFound      = "роль не найдена"
	msgInvalidBody   = "некорректное тело запроса"
	msgDuplicateName = "имя роли уже занято"
)

type Handler struct {
	service RoleService
	logger  Logger
}

func NewHandler(service RoleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/roles
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /roles - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	role, err := h.service.CreateRole(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateRoleName):
			h.logger.Warn("POST /roles - Duplicate name: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgDuplicateName)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /roles - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /roles - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /roles - Role created: role_id=%d", role.ID)
	handlers.RespondJSON(w, http.StatusCreated, role)
}

// HandleGet GET /api/v1/roles/{roleId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	roleID, ok := h.roleID(w, r)
	if !ok {
		return
	}

	role, err := h.service.GetRole(r.Context(), roleID)
	if err != nil {
		h.respondError(w, roleID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, role)
}

// HandleList GET /api/v1/roles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.logger.Error("GET /roles - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/roles/{roleId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	roleID, ok := h.roleID(w, r)
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /roles/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	role, err := h.service.UpdateRole(r.Context(), roleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateRoleName):
			h.logger.Warn("PUT /roles/{id} - Duplicate name: role_id=%d", roleID)
			handlers.RespondBadRequest(w, msgDuplicateName)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /roles/{id} - Validation failed: role_id=%d, error=%v", roleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, roleID, err)
		}
		return
	}

	h.logger.Info("PUT /roles/{id} - Role updated: role_id=%d", roleID)
	handlers.RespondJSON(w, http.StatusOK, role)
}

// HandleDelete DELETE /api/v1/roles/{roleId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	roleID, ok := h.roleID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRole(r.Context(), roleID); err != nil {
		h.respondError(w, roleID, err)
		return
	}

	h.logger.Info("DELETE /roles/{id} - Role deleted: role_id=%d", roleID)
	handlers.RespondNoContent(w)
}

func (h *Handler) roleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	roleID, err := strconv.ParseInt(mux.Vars(r)["roleId"], 10, 64)
	if err != nil {
		h.logger.Warn("Roles - Invalid role ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoleID)
		return 0, false
	}
	return roleID, true
}

func (h *Handler) respondError(w http.ResponseWriter, roleID int64, err error) {
	switch {
	case errors.Is(err, users.ErrRoleNotFound):
		h.logger.Warn("Roles - Role not found: role_id=%d", roleID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Roles - Failed: role_id=%d, error=%v", roleID, err)
		handlers.RespondInternalError(w)
	}
}
