package charge_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	chargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/charge_reservation"
)

// ChargeRequest тело запроса на списание оплаты
type ChargeRequest struct {
	ReservationID *int64           `json:"reservationId,omitempty"` // Обязателен на /payments/charge, на /reservations/{id}/charge берется из URL
	Method        string           `json:"method"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Confirm       *bool            `json:"confirm,omitempty"` // Принимается для совместимости, на расчет не влияет (по умолчанию true)
}

// ChargeResponse ответ со списанным платежом
type ChargeResponse struct {
	PaymentID     int64           `json:"paymentId"`
	ReservationID int64           `json:"reservationId"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// fromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func fromUseCaseResponse(resp *chargeUC.Response) *ChargeResponse {
	return &ChargeResponse{
		PaymentID:     resp.PaymentID,
		ReservationID: resp.ReservationID,
		Method:        resp.Method,
		Amount:        resp.Amount,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt,
	}
}
