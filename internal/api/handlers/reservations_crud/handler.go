package reservations_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgInvalidUserID        = "некорректный ID пользователя"
	msgInvalidFacilityID    = "некорректный ID парковки"
	msgNotFound             = "резервация не найдена"
	msgInvalidBody          = "некорректное тело запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/reservations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	reservation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput),
			errors.Is(err, reservations.ErrInvalidStatus),
			errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d", reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, reservation)
}

// HandleGet GET /api/v1/reservations/{reservationId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := h.reservationID(w, r)
	if !ok {
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		h.respondError(w, reservationID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservation)
}

// HandleList GET /api/v1/reservations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListReservationsRequest{}

	query := r.URL.Query()
	if v := query.Get("userId"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid user ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = &userID
	}
	if v := query.Get("facilityId"); v != "" {
		facilityID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid facility ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)
			return
		}
		req.FacilityID = &facilityID
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	list, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdate PUT /api/v1/reservations/{reservationId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := h.reservationID(w, r)
	if !ok {
		return
	}

	var req models.UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	reservation, err := h.service.Update(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput),
			errors.Is(err, reservations.ErrInvalidStatus),
			errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.respondError(w, reservationID, err)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}

// HandleDelete DELETE /api/v1/reservations/{reservationId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reservationID, ok := h.reservationID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		h.respondError(w, reservationID, err)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: reservation_id=%d", reservationID)
	handlers.RespondNoContent(w)
}

func (h *Handler) reservationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("Reservations - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return 0, false
	}
	return reservationID, true
}

func (h *Handler) respondError(w http.ResponseWriter, reservationID int64, err error) {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		h.logger.Warn("Reservations - Reservation not found: reservation_id=%d", reservationID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Reservations - Failed: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
	}
}
