package domain

import (
	"encoding/json"
	"time"
)

// SensorType represents the hardware kind of an occupancy sensor
type SensorType string

const (
	SensorTypeUltrasonic SensorType = "ultrasonic"
	SensorTypeMagnetic   SensorType = "magnetic"
	SensorTypeCamera     SensorType = "camera"
	SensorTypeOther      SensorType = "other"
)

// SensorTypes перечень всех допустимых типов сенсоров
var SensorTypes = []SensorType{
	SensorTypeUltrasonic,
	SensorTypeMagnetic,
	SensorTypeCamera,
	SensorTypeOther,
}

// IsValid returns true if the type is one of the known sensor types
func (t SensorType) IsValid() bool {
	for _, known := range SensorTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Sensor represents an IoT occupancy sensor attached to a space
type Sensor struct {
	ID         int64
	SpaceID    int64
	Type       SensorType
	HardwareID string
	Active     bool
}

// Reading represents a single raw measurement reported by a sensor.
// Readings are stored as-is and never drive space state automatically.
type Reading struct {
	ID         int64
	SensorID   int64
	Value      json.RawMessage
	Occupied   bool
	ReceivedAt time.Time
}

// SensorsFilter фильтр для получения списка сенсоров
type SensorsFilter struct {
	SpaceID *int64 // Фильтр по месту (опционально)
}

// ReadingsFilter фильтр для получения списка показаний
type ReadingsFilter struct {
	SensorID *int64 // Фильтр по сенсору (опционально)
	Limit    uint64 // Ограничение количества строк (0 - без ограничения)
}
