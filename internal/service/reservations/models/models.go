package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateReservationRequest запрос на создание резервации
type CreateReservationRequest struct {
	UserID       int64     `json:"userId"`
	FacilityID   int64     `json:"facilityId"`
	SpaceID      *int64    `json:"spaceId,omitempty"`
	PlannedStart time.Time `json:"plannedStart"`
	PlannedEnd   time.Time `json:"plannedEnd"`
	Status       *string   `json:"status,omitempty"` // По умолчанию pending
}

// UpdateReservationRequest запрос на обновление резервации
type UpdateReservationRequest struct {
	UserID       int64            `json:"userId"`
	FacilityID   int64            `json:"facilityId"`
	SpaceID      *int64           `json:"spaceId,omitempty"`
	PlannedStart time.Time        `json:"plannedStart"`
	PlannedEnd   time.Time        `json:"plannedEnd"`
	ActualStart  *time.Time       `json:"actualStart,omitempty"`
	ActualEnd    *time.Time       `json:"actualEnd,omitempty"`
	Status       string           `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount,omitempty"`
}

// ListReservationsRequest запрос на получение списка резерваций
type ListReservationsRequest struct {
	UserID     *int64  `json:"userId,omitempty"`     // Фильтр по пользователю (опционально)
	FacilityID *int64  `json:"facilityId,omitempty"` // Фильтр по парковке (опционально)
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
}

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"userId"`
	FacilityID   int64            `json:"facilityId"`
	SpaceID      *int64           `json:"spaceId,omitempty"`
	PlannedStart time.Time        `json:"plannedStart"`
	PlannedEnd   time.Time        `json:"plannedEnd"`
	ActualStart  *time.Time       `json:"actualStart,omitempty"`
	ActualEnd    *time.Time       `json:"actualEnd,omitempty"`
	Status       string           `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		FacilityID:   r.FacilityID,
		SpaceID:      r.SpaceID,
		PlannedStart: r.PlannedStart,
		PlannedEnd:   r.PlannedEnd,
		ActualStart:  r.ActualStart,
		ActualEnd:    r.ActualEnd,
		Status:       string(r.Status),
		TotalAmount:  r.TotalAmount,
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}

	return resp
}
