package reading

import "errors"

var (
	// ErrReadingNotFound возвращается, когда показание не найдено
	ErrReadingNotFound = errors.New("reading.repository: reading not found")

	// ErrSensorNotFound возвращается при ссылке на несуществующий сенсор
	ErrSensorNotFound = errors.New("reading.repository: sensor does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reading.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reading.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reading.repository: failed to scan row")
)
