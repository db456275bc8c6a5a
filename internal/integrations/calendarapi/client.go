package calendarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Client клиент для работы с CalendarService
// Реализует контракт внешнего хранилища календаря: окно месяца, создание и удаление событий
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CalendarService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListWindow получает все события и праздники месячного окна за один запрос
func (c *Client) ListWindow(ctx context.Context, workerID int64, year int, month int) ([]*domain.CalendarEvent, []*domain.Holiday, error) {
	url := fmt.Sprintf("%s/api/v1/workers/%d/calendar?year=%d&month=%d", c.baseURL, workerID, year, month)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to execute request: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, nil, fmt.Errorf("%w: invalid window parameters", ErrValidation)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrFetch, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var window WindowResponse
	if err := json.NewDecoder(resp.Body).Decode(&window); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	events := make([]*domain.CalendarEvent, 0, len(window.Events))
	for _, payload := range window.Events {
		event, err := payload.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: event id=%d: %v", ErrInvalidResponse, payload.ID, err)
		}
		events = append(events, event)
	}

	holidays := make([]*domain.Holiday, 0, len(window.Holidays))
	for _, payload := range window.Holidays {
		holiday, err := payload.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: holiday %q: %v", ErrInvalidResponse, payload.Name, err)
		}
		holidays = append(holidays, holiday)
	}

	return events, holidays, nil
}

// CreateEvent создает одно событие, охватывающее включительный диапазон дат
func (c *Client) CreateEvent(ctx context.Context, workerID int64, eventType domain.EventType, title string, startDate, endDate time.Time) (*domain.CalendarEvent, error) {
	url := fmt.Sprintf("%s/api/v1/workers/%d/events", c.baseURL, workerID)

	payload := CreateEventRequest{
		Type:      string(eventType),
		Title:     title,
		StartDate: types.NewDateString(startDate),
		EndDate:   types.NewDateString(endDate),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", fmt.Sprintf("%d", workerID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		errBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrValidation, string(errBody))
	default:
		errBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrFetch, resp.StatusCode, string(errBody))
	}

	var created CreateEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if created.SupersededCount > 0 {
		c.log.Info("CreateEvent: server reports %d existing events overlaid by event id=%d",
			created.SupersededCount, created.Event.ID)
	}

	return created.Event.ToDomain()
}

// DeleteEvent удаляет событие по ID
func (c *Client) DeleteEvent(ctx context.Context, workerID int64, eventID int64) error {
	url := fmt.Sprintf("%s/api/v1/workers/%d/events/%d", c.baseURL, workerID, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("X-User-ID", fmt.Sprintf("%d", workerID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid event ID", ErrValidation)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrFetch, resp.StatusCode, string(body))
	}
}
