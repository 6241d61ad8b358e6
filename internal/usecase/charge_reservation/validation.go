package charge_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любых обращений к хранилищу.
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if !domain.PaymentMethod(req.Method).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}

	if req.Amount != nil && req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	return nil
}
