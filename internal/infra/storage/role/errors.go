package role

import "errors"

var (
	// ErrRoleNotFound возвращается, когда роль не найдена
	ErrRoleNotFound = errors.New("role.repository: role not found")

	// ErrDuplicateName возвращается при попытке создать роль с занятым именем
	ErrDuplicateName = errors.New("role.repository: role name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("role.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("role.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("role.repository: failed to scan row")
)
