package space

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда место не найдено
	ErrSpaceNotFound = errors.New("space.repository: space not found")

	// ErrDuplicateCode возвращается при нарушении уникальности кода места внутри парковки
	ErrDuplicateCode = errors.New("space.repository: duplicate space code for facility")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("space.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("space.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("space.repository: failed to scan row")
)
