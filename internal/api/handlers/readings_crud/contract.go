package readings_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/sensors/models"
)

type ReadingService interface {
	CreateReading(ctx context.Context, req *models.CreateReadingRequest) (*models.ReadingResponse, error)
	GetReading(ctx context.Context, id int64) (*models.ReadingResponse, error)
	ListReadings(ctx context.Context, req *models.ListReadingsRequest) (*models.ReadingListResponse, error)
	DeleteReading(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
