package vehicles_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/vehicles/models"
)

type VehicleService interface {
	Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error)
	GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error)
	List(ctx context.Context, req *models.ListVehiclesRequest) (*models.VehicleListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
