package create_event

import "errors"

var (
	// ErrInvalidType возвращается при типе события вне закрытого множества
	ErrInvalidType = errors.New("create_event: invalid event type")

	// ErrInvalidRange возвращается, когда end_date раньше start_date или диапазон слишком длинный
	ErrInvalidRange = errors.New("create_event: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_event: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)
