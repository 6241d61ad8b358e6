package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// ListPaymentsRequest запрос на получение списка платежей
type ListPaymentsRequest struct {
	ReservationID *int64  `json:"reservationId,omitempty"` // Фильтр по резервации (опционально)
	Status        *string `json:"status,omitempty"`        // Фильтр по статусу (опционально)
}

// Response модели

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            int64           `json:"id"`
	ReservationID int64           `json:"reservationId"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Методы конвертации

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Method:        string(p.Method),
		Amount:        p.Amount,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, *FromDomainPayment(p))
	}

	return resp
}
