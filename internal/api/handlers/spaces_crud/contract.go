package spaces_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/spaces/models"
)

type SpaceService interface {
	Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error)
	GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error)
	List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
