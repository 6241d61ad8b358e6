package space_state

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spaces"
	"github.com/m04kA/SMC-ParkingService/internal/service/spaces/models"
)

const (
	msgInvalidSpaceID = "некорректный ID места"
	msgNotFound       = "место не найдено"
	msgInvalidBody    = "некорректное тело запроса"
	msgUnknownAction  = "неизвестное действие"
)

// Действия над местом, отображаемые в целевые состояния
const (
	actionOccupy           = "occupy"
	actionRelease          = "release"
	actionReserve          = "reserve"
	actionMarkOutOfService = "out-of-service"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleAction POST /api/v1/spaces/{spaceId}/{action}
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spaces/{id}/{action} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var resp *models.SpaceStateResponse

	switch vars["action"] {
	case actionOccupy:
		resp, err = h.service.Occupy(r.Context(), spaceID)
	case actionRelease:
		resp, err = h.service.Release(r.Context(), spaceID)
	case actionReserve:
		resp, err = h.service.Reserve(r.Context(), spaceID)
	case actionMarkOutOfService:
		resp, err = h.service.MarkOutOfService(r.Context(), spaceID)
	default:
		h.logger.Warn("POST /spaces/{id}/{action} - Unknown action: %s", vars["action"])
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		h.respondError(w, spaceID, err)
		return
	}

	h.logger.Info("POST /spaces/{id}/{action} - Space state changed: space_id=%d, state=%s", spaceID, resp.State)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleSetState PATCH /api/v1/spaces/{spaceId}/state
func (h *Handler) HandleSetState(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /spaces/{id}/state - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req SetStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /spaces/{id}/state - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.SetState(r.Context(), spaceID, req.State)
	if err != nil {
		h.respondError(w, spaceID, err)
		return
	}

	h.logger.Info("PATCH /spaces/{id}/state - Space state changed: space_id=%d, state=%s", spaceID, resp.State)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, spaceID int64, err error) {
	switch {
	case errors.Is(err, spaces.ErrSpaceNotFound):
		h.logger.Warn("Space state change - Space not found: space_id=%d", spaceID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, spaces.ErrInvalidState), errors.Is(err, spaces.ErrRedundantTransition):
		h.logger.Warn("Space state change - Rejected: space_id=%d, error=%v", spaceID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("Space state change - Failed: space_id=%d, error=%v", spaceID, err)
		handlers.RespondInternalError(w)
	}
}
