package sensors_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/sensors/models"
)

type SensorService interface {
	CreateSensor(ctx context.Context, req *models.CreateSensorRequest) (*models.SensorResponse, error)
	GetSensor(ctx context.Context, id int64) (*models.SensorResponse, error)
	ListSensors(ctx context.Context, req *models.ListSensorsRequest) (*models.SensorListResponse, error)
	UpdateSensor(ctx context.Context, id int64, req *models.UpdateSensorRequest) (*models.SensorResponse, error)
	DeleteSensor(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
