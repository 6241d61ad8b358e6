package mock_charge

import "errors"

var (
	// ErrUnknownPlan возвращается при неизвестном тарифном плане
	ErrUnknownPlan = errors.New("mock_charge: unknown plan")

	// ErrAmountMismatch возвращается, когда клиентская сумма не совпадает с суммой плана
	ErrAmountMismatch = errors.New("mock_charge: amount does not match plan")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("mock_charge: invalid input data")
)
