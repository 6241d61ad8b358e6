package roles_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/users/models"
)

type RoleService interface {
	CreateRole(ctx context.Context, req *models.CreateRoleRequest) (*models.RoleResponse, error)
	GetRole(ctx context.Context, id int64) (*models.RoleResponse, error)
	ListRoles(ctx context.Context) (*models.RoleListResponse, error)
	UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest) (*models.RoleResponse, error)
	DeleteRole(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
