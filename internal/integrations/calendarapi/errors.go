package calendarapi

import "errors"

var (
	// ErrFetch возвращается при сетевых ошибках и ошибках сервера (5xx)
	// Вызывающая сторона сохраняет ранее загруженные данные без изменений
	ErrFetch = errors.New("calendarapi client: fetch failed")

	// ErrValidation возвращается, когда сервер отклонил запрос как некорректный (границы диапазона, тип события)
	ErrValidation = errors.New("calendarapi client: validation failed")

	// ErrEventNotFound возвращается при удалении события, которого уже нет на сервере
	ErrEventNotFound = errors.New("calendarapi client: event not found")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarapi client: internal error")
)
