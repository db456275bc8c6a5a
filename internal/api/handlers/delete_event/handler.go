package delete_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

const (
	msgInvalidWorkerID = "некорректный ID исполнителя"
	msgInvalidEventID  = "некорректный ID события"
	msgNotFound        = "событие не найдено"
	msgForbidden       = "доступ запрещен"
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

// Handle DELETE /api/v1/workers/{workerId}/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем workerId из URL
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /workers/{id}/events/{id} - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	// Извлекаем eventId из URL
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /workers/{id}/events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	// Исполнитель управляет только своим календарем
	if userID, ok := middleware.UserIDFromContext(r.Context()); !ok || userID != workerID {
		h.logger.Warn("DELETE /workers/{id}/events/{id} - Access denied: worker_id=%d, event_id=%d",
			workerID, eventID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Удаляем событие
	err = h.service.Delete(r.Context(), &models.DeleteEventRequest{
		WorkerID: workerID,
		EventID:  eventID,
	})
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("DELETE /workers/{id}/events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("DELETE /workers/{id}/events/{id} - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidEventID)

		default:
			h.logger.Error("DELETE /workers/{id}/events/{id} - Failed to delete event: event_id=%d, error=%v",
				eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /workers/{id}/events/{id} - Event deleted successfully: event_id=%d, worker_id=%d",
		eventID, workerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
