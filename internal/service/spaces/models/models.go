package models

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание парковочного места
type CreateSpaceRequest struct {
	FacilityID int64   `json:"facilityId"`
	Code       string  `json:"code"`
	Level      *string `json:"level,omitempty"`
	Type       string  `json:"type"`
	State      *string `json:"state,omitempty"` // По умолчанию free
}

// UpdateSpaceRequest запрос на обновление парковочного места
type UpdateSpaceRequest struct {
	FacilityID int64   `json:"facilityId"`
	Code       string  `json:"code"`
	Level      *string `json:"level,omitempty"`
	Type       string  `json:"type"`
	State      string  `json:"state"`
}

// ListSpacesRequest запрос на получение списка мест
type ListSpacesRequest struct {
	FacilityID *int64  `json:"facilityId,omitempty"` // Фильтр по парковке (опционально)
	State      *string `json:"state,omitempty"`      // Фильтр по состоянию (опционально)
	Type       *string `json:"type,omitempty"`       // Фильтр по типу (опционально)
}

// Response модели

// SpaceResponse ответ с данными парковочного места
type SpaceResponse struct {
	ID         int64   `json:"id"`
	FacilityID int64   `json:"facilityId"`
	Code       string  `json:"code"`
	Level      *string `json:"level,omitempty"`
	Type       string  `json:"type"`
	State      string  `json:"state"`
}

// SpaceListResponse ответ со списком мест
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// SpaceStateResponse ответ операции смены состояния
type SpaceStateResponse struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:         s.ID,
		FacilityID: s.FacilityID,
		Code:       s.Code,
		Level:      s.Level,
		Type:       string(s.Type),
		State:      string(s.State),
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, s := range spaces {
		resp.Spaces = append(resp.Spaces, *FromDomainSpace(s))
	}

	return resp
}
