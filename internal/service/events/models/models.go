package models

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// WindowRequest запрос месячного окна календаря
type WindowRequest struct {
	WorkerID int64
	Year     int
	Month    int // 1-12
}

// WindowData полное месячное окно: события исполнителя и праздники
type WindowData struct {
	Events   []*domain.CalendarEvent
	Holidays []*domain.Holiday
}

// DeleteEventRequest запрос на удаление события
type DeleteEventRequest struct {
	WorkerID int64
	EventID  int64
}
