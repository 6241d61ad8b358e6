package sensors

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SensorRepository интерфейс репозитория сенсоров
type SensorRepository interface {
	Create(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error)
	GetByID(ctx context.Context, id int64) (*domain.Sensor, error)
	List(ctx context.Context, filter domain.SensorsFilter) ([]*domain.Sensor, error)
	Update(ctx context.Context, id int64, sensor *domain.Sensor) (*domain.Sensor, error)
	Delete(ctx context.Context, id int64) error
}

// ReadingRepository интерфейс репозитория показаний
type ReadingRepository interface {
	Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	GetByID(ctx context.Context, id int64) (*domain.Reading, error)
	List(ctx context.Context, filter domain.ReadingsFilter) ([]*domain.Reading, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
