package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment is settled
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodOnlineCard PaymentMethod = "online_card"
)

// PaymentMethods перечень всех допустимых методов оплаты
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodOnlineCard,
}

// IsValid returns true if the method is one of the known payment methods
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentStatuses перечень всех допустимых статусов платежа
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentApproved,
	PaymentFailed,
	PaymentRefunded,
}

// IsValid returns true if the status is one of the known payment statuses
func (s PaymentStatus) IsValid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Payment represents a monetary charge record tied to a reservation.
// Created exactly once per charge attempt and never mutated afterwards.
type Payment struct {
	ID            int64
	ReservationID int64
	Method        PaymentMethod
	Amount        decimal.Decimal // Always 2 decimal places
	Status        PaymentStatus
	CreatedAt     time.Time
}

// StatusForMethod returns the payment status a freshly created payment gets
// for the given method: cash and card settle immediately, online card
// settlement is asynchronous and starts as pending.
func StatusForMethod(method PaymentMethod) PaymentStatus {
	if method == PaymentMethodOnlineCard {
		return PaymentPending
	}
	return PaymentApproved
}

// PaymentsFilter фильтр для получения списка платежей
type PaymentsFilter struct {
	ReservationID *int64         // Фильтр по резервации (опционально)
	Status        *PaymentStatus // Фильтр по статусу (опционально)
}
