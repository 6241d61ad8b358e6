package payments_crud

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
)

const (
	msgInvalidPaymentID     = "некорректный ID платежа"
	msgInvalidReservationID = "некорректный ID резервации"
	msgNotFound             = "платеж не найден"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/payments/{paymentId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.service.GetByID(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, paymentID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, payment)
}

// HandleList GET /api/v1/payments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := models.ListPaymentsRequest{}

	query := r.URL.Query()
	if v := query.Get("reservationId"); v != "" {
		reservationID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /payments - Invalid reservation ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)
			return
		}
		req.ReservationID = &reservationID
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	list, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidStatus):
			h.logger.Warn("GET /payments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /payments - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleDelete DELETE /api/v1/payments/{paymentId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), paymentID); err != nil {
		h.respondError(w, paymentID, err)
		return
	}

	h.logger.Info("DELETE /payments/{id} - Payment deleted: payment_id=%d", paymentID)
	handlers.RespondNoContent(w)
}

func (h *Handler) paymentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	paymentID, err := strconv.ParseInt(mux.Vars(r)["paymentId"], 10, 64)
	if err != nil {
		h.logger.Warn("Payments - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return 0, false
	}
	return paymentID, true
}

func (h *Handler) respondError(w http.ResponseWriter, paymentID int64, err error) {
	switch {
	case errors.Is(err, payments.ErrPaymentNotFound):
		h.logger.Warn("Payments - Payment not found: payment_id=%d", paymentID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("Payments - Failed: payment_id=%d, error=%v", paymentID, err)
		handlers.RespondInternalError(w)
	}
}
