package stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций для статистики
type ReservationRepository interface {
	CountTotal(ctx context.Context) (int64, error)
	CountByDay(ctx context.Context, from, to time.Time) (map[string]int64, error)
}

// SpaceRepository интерфейс репозитория мест для статистики
type SpaceRepository interface {
	CountTotal(ctx context.Context) (int64, error)
	CountByState(ctx context.Context, state domain.SpaceState) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
