package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Billing constants
const (
	// FallbackBilledHours начисляется при отсутствующем или некорректном
	// интервале резервации (это fallback, а не ошибка)
	FallbackBilledHours = 1

	// MinBilledMinutes нижняя граница длительности при расчете
	MinBilledMinutes = 1

	// MoneyScale количество знаков после запятой у денежных сумм
	MoneyScale = 2
)

// Validation constants
const (
	MaxSpaceCodeLength    = 20
	MaxPlateLength        = 15
	MaxFacilityNameLength = 120
)
