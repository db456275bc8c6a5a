package create_event

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	createEvent "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Type      string           `json:"type"`            // AVAILABLE / BUSY / BLOCKED
	Title     string           `json:"title,omitempty"` // Опциональная подпись
	StartDate types.DateString `json:"startDate"`       // "2025-03-10"
	EndDate   types.DateString `json:"endDate"`         // "2025-03-12"
}

// EventResponse HTTP response model
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

// CreateEventResponse HTTP модель ответа с созданным событием
// supersededCount - предупреждение о перезаписи: сколько существующих событий
// перекрыто новым диапазоном
type CreateEventResponse struct {
	Event           EventResponse `json:"event"`
	SupersededCount int           `json:"supersededCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateEventRequest) ToUseCaseRequest(workerID int64) (*createEvent.Request, error) {
	startDate, err := r.StartDate.Time()
	if err != nil {
		return nil, err
	}

	endDate, err := r.EndDate.Time()
	if err != nil {
		return nil, err
	}

	return &createEvent.Request{
		WorkerID:  workerID,
		Type:      domain.EventType(r.Type),
		Title:     r.Title,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createEvent.Response) *CreateEventResponse {
	return &CreateEventResponse{
		Event: EventResponse{
			ID:        resp.ID,
			WorkerID:  resp.WorkerID,
			Type:      string(resp.Type),
			Title:     resp.Title,
			StartDate: types.NewDateString(resp.StartDate),
			EndDate:   types.NewDateString(resp.EndDate),
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
		},
		SupersededCount: resp.SupersededCount,
	}
}
