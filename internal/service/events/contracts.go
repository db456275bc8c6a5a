package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	GetByWindow(ctx context.Context, workerID int64, from, to time.Time) ([]*domain.CalendarEvent, error)
	Delete(ctx context.Context, workerID int64, id int64) error
}

// HolidayRepository интерфейс репозитория производственного календаря
type HolidayRepository interface {
	GetByWindow(ctx context.Context, from, to time.Time) ([]*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
