package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationFinished  ReservationStatus = "finished"
)

// ReservationStatuses перечень всех допустимых статусов резервации
var ReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationActive,
	ReservationCancelled,
	ReservationFinished,
}

// IsValid returns true if the status is one of the known reservation statuses
func (s ReservationStatus) IsValid() bool {
	for _, known := range ReservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Reservation represents a user's claim on a facility (optionally a specific space)
// for a time window. Planned bounds are set at creation; actual bounds are set when
// the physical occupancy begins and ends.
type Reservation struct {
	ID           int64
	UserID       int64
	FacilityID   int64
	SpaceID      *int64
	PlannedStart time.Time
	PlannedEnd   time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	Status       ReservationStatus
	TotalAmount  *decimal.Decimal
	CreatedAt    time.Time
}

// IsOpen returns true if the reservation has not reached a terminal status
func (r *Reservation) IsOpen() bool {
	return r.Status == ReservationPending || r.Status == ReservationActive
}

// ReservationsFilter фильтр для получения списка резерваций
type ReservationsFilter struct {
	UserID     *int64             // Фильтр по пользователю (опционально)
	FacilityID *int64             // Фильтр по парковке (опционально)
	Status     *ReservationStatus // Фильтр по статусу (опционально)
}
