package spaces_crud

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
	msgInvalidSpaceID    = "некорректный ID места"
	msgInvalidFacilityID = "некорректный ID парковки"
	msgNotFound          = "место не найдено"
	msgInvalidBody       = "некорректное тело запроса"
	msgDuplicateCode     = "код места уже занят на этой парковке"
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

// HandleCreate POST /api/v1/spaces
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	space, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrDuplicateCode):
			h.logger.Warn("POST /spaces - Duplicate code: facility_id=%d, code=%s", req.FacilityID, req.Code)
			handlers.RespondBadRequest(w, msgDuplicateCode)

		case errors.Is(err, spaces.ErrInvalidInput), errors.Is(err, spaces.ErrInvalidState):
			h.logger.Warn("POST /spaces - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /spaces - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created: space_id=%d", space.ID)
	handlers.RespondJSON(w, http.StatusCreated, space)
}

// HandleGet GET /api/v1/spaces/{spaceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.spaceID(w, r)
	if !ok {
		return
	}

	space, err := h.service.GetByID(r.Context(), spaceID)
	if err != nil {
		h.respondError(w, spaceID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, space)
}

// HandleList GET /api/v1/spaces
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListSpacesRequest{}

	query := r.URL.Query()
	if v := query.Get("facilityId"); v != "" {
		facilityID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /spaces - Invalid facility ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)
			return
		}
		req.FacilityID = &facilityID
	}
	if v := query.Get("state"); v != "" {
		req.State = &v
	}
	if v := query.Get("type"); v != "" {
		req.Type = &v
	}

	list, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput), errors.Is(err, spaces.ErrInvalidState):
			h.logger.Warn("GET /spaces - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /spaces - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/spaces/{spaceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.spaceID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	space, err := h.service.Update(r.Context(), spaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrDuplicateCode):
			h.logger.Warn("PUT /spaces/{id} - Duplicate code: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgDuplicateCode)

		case errors.Is(err, spaces.ErrInvalidInput), errors.Is(err, spaces.ErrInvalidState):
			h.logger.Warn("PUT /spaces/{id} - Validation failed: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, spaceID, err)
		}
		return
	}

	h.logger.Info("PUT /spaces/{id} - Space updated: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, space)
}

// HandleDelete DELETE /api/v1/spaces/{spaceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := h.spaceID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), spaceID); err != nil {
		h.respondError(w, spaceID, err)
		return
	}

	h.logger.Info("DELETE /spaces/{id} - Space deleted: space_id=%d", spaceID)
	handlers.RespondNoContent(w)
}

func (h *Handler) spaceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	spaceID, err := strconv.ParseInt(mux.Vars(r)["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("Spaces - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return 0, false
	}
	return spaceID, true
}

func (h *Handler) respondError(w http.ResponseWriter, spaceID int64, err error) {
	switch {
	case errors.Is(err, spaces.ErrSpaceNotFound):
		h.logger.Warn("Spaces - Space not found: space_id=%d", spaceID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Spaces - Failed: space_id=%d, error=%v", spaceID, err)
		handlers.RespondInternalError(w)
	}
}
