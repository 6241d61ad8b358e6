package facilities_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/facilities/models"
)

type FacilityService interface {
	Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error)
	GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error)
	List(ctx context.Context) (*models.FacilityListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
