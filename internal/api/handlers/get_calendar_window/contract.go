package get_calendar_window

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

// EventService интерфейс сервиса календаря
type EventService interface {
	ListWindow(ctx context.Context, req *models.WindowRequest) (*models.WindowData, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
