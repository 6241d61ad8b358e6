package mock_charge

import (
	"context"

	mockChargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/mock_charge"
)

type MockChargeUseCase interface {
	Execute(ctx context.Context, req *mockChargeUC.Request) (*mockChargeUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
