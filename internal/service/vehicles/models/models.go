package models

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на регистрацию транспорта
type CreateVehicleRequest struct {
	UserID int64   `json:"userId"`
	Plate  string  `json:"plate"`
	Type   string  `json:"type"`
	Color  *string `json:"color,omitempty"`
}

// UpdateVehicleRequest запрос на обновление транспорта
type UpdateVehicleRequest struct {
	UserID int64   `json:"userId"`
	Plate  string  `json:"plate"`
	Type   string  `json:"type"`
	Color  *string `json:"color,omitempty"`
}

// ListVehiclesRequest запрос на получение списка транспорта
type ListVehiclesRequest struct {
	UserID *int64 `json:"userId,omitempty"` // Фильтр по владельцу (опционально)
}

// Response модели

// VehicleResponse ответ с данными транспорта
type VehicleResponse struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"userId"`
	Plate  string  `json:"plate"`
	Type   string  `json:"type"`
	Color  *string `json:"color,omitempty"`
}

// VehicleListResponse ответ со списком транспорта
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// Методы конвертации

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:     v.ID,
		UserID: v.UserID,
		Plate:  v.Plate,
		Type:   string(v.Type),
		Color:  v.Color,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		resp.Vehicles = append(resp.Vehicles, *FromDomainVehicle(v))
	}

	return resp
}
