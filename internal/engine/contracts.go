package engine

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// CalendarAPI интерфейс внешнего хранилища календаря
// Реализуется HTTP-клиентом calendarapi или любой in-process реализацией с теми же контрактами
type CalendarAPI interface {
	ListWindow(ctx context.Context, workerID int64, year int, month int) ([]*domain.CalendarEvent, []*domain.Holiday, error)
	CreateEvent(ctx context.Context, workerID int64, eventType domain.EventType, title string, startDate, endDate time.Time) (*domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, workerID int64, eventID int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Определяет, какой календарный день считается "сегодня" при фильтрации прошедших дат
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
