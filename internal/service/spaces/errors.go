package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда место не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrDuplicateCode возвращается, когда код места уже занят на парковке
	ErrDuplicateCode = errors.New("space code already exists in facility")

	// ErrInvalidState возвращается при неизвестном целевом состоянии
	ErrInvalidState = errors.New("invalid space state")

	// ErrRedundantTransition возвращается в строгом режиме при переводе в текущее состояние
	ErrRedundantTransition = errors.New("space is already in this state")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
