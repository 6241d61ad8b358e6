package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrRoleNotFound возвращается, когда роль не найдена
	ErrRoleNotFound = errors.New("role not found")

	// ErrDuplicateEmail возвращается, когда email уже занят
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateRoleName возвращается, когда имя роли уже занято
	ErrDuplicateRoleName = errors.New("role name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
