package sensors

import "errors"

var (
	// ErrSensorNotFound возвращается, когда сенсор не найден
	ErrSensorNotFound = errors.New("sensor not found")

	// ErrReadingNotFound возвращается, когда показание не найдено
	ErrReadingNotFound = errors.New("reading not found")

	// ErrDuplicateHardwareID возвращается, когда аппаратный ID уже занят
	ErrDuplicateHardwareID = errors.New("hardware id already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
