package payments_crud

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
)

type PaymentService interface {
	GetByID(ctx context.Context, id int64) (*models.PaymentResponse, error)
	List(ctx context.Context, req *models.ListPaymentsRequest) (*models.PaymentListResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
