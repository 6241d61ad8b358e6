package sensor

import "errors"

var (
	// ErrSensorNotFound возвращается, когда сенсор не найден
	ErrSensorNotFound = errors.New("sensor.repository: sensor not found")

	// ErrDuplicateHardwareID возвращается при регистрации сенсора с занятым аппаратным ID
	ErrDuplicateHardwareID = errors.New("sensor.repository: hardware id already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sensor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sensor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sensor.repository: failed to scan row")
)
