package charge_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("charge_reservation: reservation not found")

	// ErrInvalidMethod возвращается при неизвестном методе оплаты
	ErrInvalidMethod = errors.New("charge_reservation: invalid payment method")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("charge_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("charge_reservation: internal error")
)
