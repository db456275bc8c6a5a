package create_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	GetByWindow(ctx context.Context, workerID int64, from, to time.Time) ([]*domain.CalendarEvent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
