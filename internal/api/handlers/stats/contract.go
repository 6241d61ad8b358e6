package stats

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/stats/models"
)

type StatsService interface {
	Summary(ctx context.Context) (*models.SummaryResponse, error)
	ReservationsLast7Days(ctx context.Context) (*models.SeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
