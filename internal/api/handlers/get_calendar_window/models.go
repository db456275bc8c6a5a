package get_calendar_window

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// EventResponse HTTP модель события календаря
type EventResponse struct {
	ID        int64            `json:"id"`
	WorkerID  int64            `json:"workerId"`
	Type      string           `json:"type"`
	Title     string           `json:"title,omitempty"`
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// HolidayResponse HTTP модель праздничного дня
type HolidayResponse struct {
	Date types.DateString `json:"date"`
	Name string           `json:"name"`
}

// WindowResponse HTTP модель месячного окна календаря
type WindowResponse struct {
	Events   []EventResponse   `json:"events"`
	Holidays []HolidayResponse `json:"holidays"`
}

// FromServiceWindow конвертирует данные сервиса в HTTP response
func FromServiceWindow(data *models.WindowData) *WindowResponse {
	events := make([]EventResponse, 0, len(data.Events))
	for _, event := range data.Events {
		events = append(events, EventResponse{
			ID:        event.ID,
			WorkerID:  event.WorkerID,
			Type:      string(event.Type),
			Title:     event.Title,
			StartDate: types.NewDateString(event.StartDate),
			EndDate:   types.NewDateString(event.EndDate),
			CreatedAt: event.CreatedAt.Format(time.RFC3339),
			UpdatedAt: event.UpdatedAt.Format(time.RFC3339),
		})
	}

	holidays := make([]HolidayResponse, 0, len(data.Holidays))
	for _, holiday := range data.Holidays {
		holidays = append(holidays, HolidayResponse{
			Date: types.NewDateString(holiday.Date),
			Name: holiday.Name,
		})
	}

	return &WindowResponse{
		Events:   events,
		Holidays: holidays,
	}
}
