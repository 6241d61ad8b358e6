package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// CreateSensorRequest запрос на регистрацию сенсора
type CreateSensorRequest struct {
	SpaceID    int64  `json:"spaceId"`
	Type       string `json:"type"`
	HardwareID string `json:"hardwareId"`
	Active     *bool  `json:"active,omitempty"` // По умолчанию true
}

// UpdateSensorRequest запрос на обновление сенсора
type UpdateSensorRequest struct {
	SpaceID    int64  `json:"spaceId"`
	Type       string `json:"type"`
	HardwareID string `json:"hardwareId"`
	Active     bool   `json:"active"`
}

// ListSensorsRequest запрос на получение списка сенсоров
type ListSensorsRequest struct {
	SpaceID *int64 `json:"spaceId,omitempty"` // Фильтр по месту (опционально)
}

// CreateReadingRequest запрос на сохранение показания сенсора
type CreateReadingRequest struct {
	SensorID int64           `json:"sensorId"`
	Value    json.RawMessage `json:"value"`
	Occupied bool            `json:"occupied"`
}

// ListReadingsRequest запрос на получение списка показаний
type ListReadingsRequest struct {
	SensorID *int64 `json:"sensorId,omitempty"` // Фильтр по сенсору (опционально)
	Limit    uint64 `json:"limit,omitempty"`    // Ограничение количества (0 - без ограничения)
}

// Response модели

// SensorResponse ответ с данными сенсора
type SensorResponse struct {
	ID         int64  `json:"id"`
	SpaceID    int64  `json:"spaceId"`
	Type       string `json:"type"`
	HardwareID string `json:"hardwareId"`
	Active     bool   `json:"active"`
}

// SensorListResponse ответ со списком сенсоров
type SensorListResponse struct {
	Sensors []SensorResponse `json:"sensors"`
}

// ReadingResponse ответ с данными показания
type ReadingResponse struct {
	ID         int64           `json:"id"`
	SensorID   int64           `json:"sensorId"`
	Value      json.RawMessage `json:"value"`
	Occupied   bool            `json:"occupied"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

// ReadingListResponse ответ со списком показаний
type ReadingListResponse struct {
	Readings []ReadingResponse `json:"readings"`
}

// Методы конвертации

// FromDomainSensor конвертирует domain модель в DTO
func FromDomainSensor(s *domain.Sensor) *SensorResponse {
	if s == nil {
		return nil
	}

	return &SensorResponse{
		ID:         s.ID,
		SpaceID:    s.SpaceID,
		Type:       string(s.Type),
		HardwareID: s.HardwareID,
		Active:     s.Active,
	}
}

// FromDomainSensorList конвертирует список domain моделей в DTO
func FromDomainSensorList(sensors []*domain.Sensor) *SensorListResponse {
	resp := &SensorListResponse{
		Sensors: make([]SensorResponse, 0, len(sensors)),
	}

	for _, s := range sensors {
		resp.Sensors = append(resp.Sensors, *FromDomainSensor(s))
	}

	return resp
}

// FromDomainReading конвертирует domain модель в DTO
func FromDomainReading(r *domain.Reading) *ReadingResponse {
	if r == nil {
		return nil
	}

	return &ReadingResponse{
		ID:         r.ID,
		SensorID:   r.SensorID,
		Value:      r.Value,
		Occupied:   r.Occupied,
		ReceivedAt: r.ReceivedAt,
	}
}

// FromDomainReadingList конвертирует список domain моделей в DTO
func FromDomainReadingList(readings []*domain.Reading) *ReadingListResponse {
	resp := &ReadingListResponse{
		Readings: make([]ReadingResponse, 0, len(readings)),
	}

	for _, r := range readings {
		resp.Readings = append(resp.Readings, *FromDomainReading(r))
	}

	return resp
}
