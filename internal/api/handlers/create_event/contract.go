package create_event

import (
	"context"

	createEvent "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
)

// CreateEventUseCase интерфейс use case создания события
type CreateEventUseCase interface {
	Execute(ctx context.Context, req *createEvent.Request) (*createEvent.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
