package facilities

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// FacilityRepository интерфейс репозитория парковок
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
	Update(ctx context.Context, id int64, facility *domain.Facility) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
}

// SpaceRepository интерфейс репозитория мест для построения карты
type SpaceRepository interface {
	List(ctx context.Context, filter domain.SpacesFilter) ([]*domain.Space, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
