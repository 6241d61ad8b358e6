package space_state

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/spaces/models"
)

type SpaceService interface {
	Occupy(ctx context.Context, id int64) (*models.SpaceStateResponse, error)
	Release(ctx context.Context, id int64) (*models.SpaceStateResponse, error)
	Reserve(ctx context.Context, id int64) (*models.SpaceStateResponse, error)
	MarkOutOfService(ctx context.Context, id int64) (*models.SpaceStateResponse, error)
	SetState(ctx context.Context, id int64, state string) (*models.SpaceStateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
