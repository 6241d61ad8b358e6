package charge_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	chargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/charge_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgMissingReservationID = "отсутствует ID резервации"
	msgNotFound             = "резервация не найдена"
	msgInvalidBody          = "некорректное тело запроса"
)

type Handler struct {
	useCase ChargeUseCase
	logger  Logger
}

func NewHandler(useCase ChargeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleByReservation POST /api/v1/reservations/{reservationId}/charge
func (h *Handler) HandleByReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/charge - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req ChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/charge - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	h.execute(w, r, reservationID, &req)
}

// HandleByBody POST /api/v1/payments/charge
func (h *Handler) HandleByBody(w http.ResponseWriter, r *http.Request) {
	var req ChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/charge - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.ReservationID == nil {
		h.logger.Warn("POST /payments/charge - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingReservationID)
		return
	}

	h.execute(w, r, *req.ReservationID, &req)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, reservationID int64, req *ChargeRequest) {
	resp, err := h.useCase.Execute(r.Context(), &chargeUC.Request{
		ReservationID: reservationID,
		Method:        req.Method,
		Amount:        req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, chargeUC.ErrReservationNotFound):
			h.logger.Warn("Charge - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, chargeUC.ErrInvalidMethod), errors.Is(err, chargeUC.ErrInvalidInput):
			h.logger.Warn("Charge - Validation failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("Charge - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("Charge - Payment created: payment_id=%d, reservation_id=%d, amount=%s",
		resp.PaymentID, resp.ReservationID, resp.Amount)
	handlers.RespondJSON(w, http.StatusCreated, fromUseCaseResponse(resp))
}
