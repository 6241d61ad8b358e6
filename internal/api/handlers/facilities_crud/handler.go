package facilities_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/facilities"
	"github.com/m04kA/SMC-ParkingService/internal/service/facilities/models"
)

const (
	msgInvalidFacilityID = "некорректный ID парковки"
	msgNotFound          = "парковка не найдена"
	msgInvalidBody       = "некорректное тело запроса"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/facilities
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	facility, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("POST /facilities - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /facilities - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities - Facility created: facility_id=%d", facility.ID)
	handlers.RespondJSON(w, http.StatusCreated, facility)
}

// HandleGet GET /api/v1/facilities/{facilityId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	facilityID, ok := h.facilityID(w, r)
	if !ok {
		return
	}

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		h.respondError(w, facilityID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, facility)
}

// HandleList GET /api/v1/facilities
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/facilities/{facilityId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	facilityID, ok := h.facilityID(w, r)
	if !ok {
		return
	}

	var req models.UpdateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	facility, err := h.service.Update(r.Context(), facilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id} - Validation failed: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, facilityID, err)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id} - Facility updated: facility_id=%d", facilityID)
	handlers.RespondJSON(w, http.StatusOK, facility)
}

// HandleDelete DELETE /api/v1/facilities/{facilityId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	facilityID, ok := h.facilityID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), facilityID); err != nil {
		h.respondError(w, facilityID, err)
		return
	}

	h.logger.Info("DELETE /facilities/{id} - Facility deleted: facility_id=%d", facilityID)
	handlers.RespondNoContent(w)
}

func (h *Handler) facilityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("Facilities - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return 0, false
	}
	return facilityID, true
}

func (h *Handler) respondError(w http.ResponseWriter, facilityID int64, err error) {
	switch {
	case errors.Is(err, facilities.ErrFacilityNotFound):
		h.logger.Warn("Facilities - Facility not found: facility_id=%d", facilityID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Facilities - Failed: facility_id=%d, error=%v", facilityID, err)
		handlers.RespondInternalError(w)
	}
}
