package get_calendar_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

const (
	msgInvalidWorkerID = "некорректный ID исполнителя"
	msgMissingYear     = "параметр year обязателен"
	msgInvalidYear     = "некорректный год"
	msgMissingMonth    = "параметр month обязателен"
	msgInvalidMonth    = "некорректный месяц, ожидается число от 1 до 12"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/calendar
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем workerId из URL
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/calendar - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	// Извлекаем year из query
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /workers/{id}/calendar - Missing year: worker_id=%d", workerID)
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1970 || year > 9999 {
		h.logger.Warn("GET /workers/{id}/calendar - Invalid year=%q: worker_id=%d", yearStr, workerID)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /workers/{id}/calendar - Missing month: worker_id=%d", workerID)
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/calendar - Invalid month=%q: worker_id=%d", monthStr, workerID)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем сервис
	window, err := h.service.ListWindow(r.Context(), &models.WindowRequest{
		WorkerID: workerID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/calendar - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /workers/{id}/calendar - Failed to fetch window: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/calendar - Window fetched: worker_id=%d, year=%d, month=%d, events=%d",
		workerID, year, month, len(window.Events))
	handlers.RespondJSON(w, http.StatusOK, FromServiceWindow(window))
}
