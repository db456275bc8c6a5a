package calendarapi

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// EventPayload модель события календаря в ответах CalendarService
type EventPayload struct {
	ID        int64            `json:"id"`
	WorkerID  int64            `json:"workerId"`
	Type      string           `json:"type"`
	Title     string           `json:"title,omitempty"`
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
	CreatedAt string           `json:"createdAt,omitempty"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
}

// HolidayPayload модель праздничного дня в ответах CalendarService
type HolidayPayload struct {
	Date types.DateString `json:"date"`
	Name string           `json:"name"`
}

// WindowResponse ответ на запрос месячного окна календаря
type WindowResponse struct {
	Events   []EventPayload   `json:"events"`
	Holidays []HolidayPayload `json:"holidays"`
}

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Type      string           `json:"type"`
	Title     string           `json:"title,omitempty"`
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
}

// CreateEventResponse ответ на создание события
type CreateEventResponse struct {
	Event           EventPayload `json:"event"`
	SupersededCount int          `json:"supersededCount"`
}

// ErrorResponse модель ошибки от CalendarService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует payload в доменное событие
func (p *EventPayload) ToDomain() (*domain.CalendarEvent, error) {
	start, err := p.StartDate.Time()
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	end, err := p.EndDate.Time()
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	return &domain.CalendarEvent{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		Type:      domain.EventType(p.Type),
		Title:     p.Title,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// ToDomain конвертирует payload в доменный праздник
func (p *HolidayPayload) ToDomain() (*domain.Holiday, error) {
	date, err := p.Date.Time()
	if err != nil {
		return nil, fmt.Errorf("invalid holiday date: %w", err)
	}

	return &domain.Holiday{Date: date, Name: p.Name}, nil
}
