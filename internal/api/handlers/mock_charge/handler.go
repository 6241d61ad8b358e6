package mock_charge

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	mockChargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/mock_charge"
)

const msgInvalidBody = "некорректное тело запроса"

type Handler struct {
	useCase MockChargeUseCase
	logger  Logger
}

func NewHandler(useCase MockChargeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/mock-charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MockChargeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/mock-charge - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &mockChargeUC.Request{
		Plan:          req.Plan,
		Amount:        req.Amount,
		ReservationID: req.ReservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, mockChargeUC.ErrUnknownPlan),
			errors.Is(err, mockChargeUC.ErrAmountMismatch),
			errors.Is(err, mockChargeUC.ErrInvalidInput):
			h.logger.Warn("POST /payments/mock-charge - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /payments/mock-charge - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/mock-charge - Charge accepted: plan=%s, amount=%s", resp.Plan, resp.Amount)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}
