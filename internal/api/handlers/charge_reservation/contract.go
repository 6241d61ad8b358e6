package charge_reservation

import (
	"context"

	chargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/charge_reservation"
)

type ChargeUseCase interface {
	Execute(ctx context.Context, req *chargeUC.Request) (*chargeUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
