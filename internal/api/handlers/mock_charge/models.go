package mock_charge

import (
	"github.com/shopspring/decimal"

	mockChargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/mock_charge"
)

// MockChargeRequest тело запроса тестового списания
type MockChargeRequest struct {
	Plan          string           `json:"plan"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	ReservationID *int64           `json:"reservationId,omitempty"`
}

// MockChargeResponse ответ тестового списания.
// PaymentID равен null, если платеж не привязан или не сохранился.
type MockChargeResponse struct {
	OK        bool            `json:"ok"`
	Plan      string          `json:"plan"`
	Amount    decimal.Decimal `json:"amount"`
	PaymentID *int64          `json:"paymentId"`
}

// fromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func fromUseCaseResponse(resp *mockChargeUC.Response) *MockChargeResponse {
	return &MockChargeResponse{
		OK:        resp.OK,
		Plan:      resp.Plan,
		Amount:    resp.Amount,
		PaymentID: resp.PaymentID,
	}
}
