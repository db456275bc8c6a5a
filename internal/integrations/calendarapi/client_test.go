package calendarapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}), srv
}

func TestListWindow_Success(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/workers/7/calendar", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "3", r.URL.Query().Get("month"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(WindowResponse{
			Events: []EventPayload{
				{ID: 1, WorkerID: 7, Type: "BUSY", Title: "Смена", StartDate: "2025-03-10", EndDate: "2025-03-12"},
			},
			Holidays: []HolidayPayload{
				{Date: "2025-03-08", Name: "Международный женский день"},
			},
		})
	})
	defer srv.Close()

	events, holidays, err := client.ListWindow(context.Background(), 7, 2025, 3)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, domain.TypeBusy, events[0].Type)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), events[0].StartDate)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), events[0].EndDate)

	require.Len(t, holidays, 1)
	assert.Equal(t, "Международный женский день", holidays[0].Name)
}

func TestListWindow_EmptyWindow(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(WindowResponse{})
	})
	defer srv.Close()

	events, holidays, err := client.ListWindow(context.Background(), 7, 2025, 3)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Empty(t, holidays)
}

func TestListWindow_BadRequest(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	defer srv.Close()

	_, _, err := client.ListWindow(context.Background(), 7, 2025, 13)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListWindow_ServerError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, _, err := client.ListWindow(context.Background(), 7, 2025, 3)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestListWindow_MalformedEventDate(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(WindowResponse{
			Events: []EventPayload{{ID: 1, Type: "BUSY", StartDate: "10.03.2025", EndDate: "2025-03-12"}},
		})
	})
	defer srv.Close()

	_, _, err := client.ListWindow(context.Background(), 7, 2025, 3)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateEvent_Success(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/workers/7/events", r.URL.Path)
		assert.Equal(t, "7", r.Header.Get("X-User-ID"))

		var req CreateEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BUSY", req.Type)
		assert.Equal(t, "2025-03-10", req.StartDate.String())
		assert.Equal(t, "2025-03-12", req.EndDate.String())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateEventResponse{
			Event: EventPayload{
				ID: 42, WorkerID: 7, Type: req.Type, Title: req.Title,
				StartDate: req.StartDate, EndDate: req.EndDate,
			},
			SupersededCount: 1,
		})
	})
	defer srv.Close()

	created, err := client.CreateEvent(context.Background(), 7, domain.TypeBusy, "Смена",
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, domain.TypeBusy, created.Type)
}

func TestCreateEvent_ValidationError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Code: http.StatusBadRequest, Message: "некорректный диапазон дат"})
	})
	defer srv.Close()

	_, err := client.CreateEvent(context.Background(), 7, domain.TypeBusy, "",
		time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteEvent_Success(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/workers/7/events/42", r.URL.Path)
		assert.Equal(t, "7", r.Header.Get("X-User-ID"))
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	assert.NoError(t, client.DeleteEvent(context.Background(), 7, 42))
}

func TestDeleteEvent_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	err := client.DeleteEvent(context.Background(), 7, 404)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent_ServerError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	err := client.DeleteEvent(context.Background(), 7, 42)
	assert.ErrorIs(t, err, ErrFetch)
}
