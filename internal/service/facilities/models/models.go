package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateFacilityRequest запрос на создание парковки
type CreateFacilityRequest struct {
	Name      string           `json:"name"`
	Address   *string          `json:"address,omitempty"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	Capacity  int              `json:"capacity"`
	Schedule  *string          `json:"schedule,omitempty"`
}

// UpdateFacilityRequest запрос на обновление парковки
type UpdateFacilityRequest struct {
	Name      string           `json:"name"`
	Address   *string          `json:"address,omitempty"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	Capacity  int              `json:"capacity"`
	Schedule  *string          `json:"schedule,omitempty"`
}

// Response модели

// FacilityResponse ответ с данными парковки
type FacilityResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Address   *string          `json:"address,omitempty"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	Capacity  int              `json:"capacity"`
	Schedule  *string          `json:"schedule,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FacilityListResponse ответ со списком парковок
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// MapSpace место на карте парковки
type MapSpace struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Column int    `json:"column"`
	Type   string `json:"type"`
	State  string `json:"state"`
}

// MapRow ряд мест на карте парковки
type MapRow struct {
	Row    string     `json:"row"`
	Spaces []MapSpace `json:"spaces"`
}

// FacilityMapResponse карта парковки, сгруппированная по рядам
type FacilityMapResponse struct {
	FacilityID int64    `json:"facilityId"`
	Name       string   `json:"name"`
	Rows       []MapRow `json:"rows"`
}

// Методы конвертации

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Capacity:  f.Capacity,
		Schedule:  f.Schedule,
		CreatedAt: f.CreatedAt,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}

	for _, f := range facilities {
		resp.Facilities = append(resp.Facilities, *FromDomainFacility(f))
	}

	return resp
}
