package create_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	createEvent "github.com/m04kA/SMC-CalendarService/internal/usecase/create_event"
)

const (
	msgInvalidWorkerID    = "некорректный ID исполнителя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidType        = "некорректный тип события, ожидается AVAILABLE, BUSY или BLOCKED"
	msgInvalidRange       = "некорректный диапазон дат"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workers/{workerId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем workerId из URL
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/events - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	// Исполнитель управляет только своим календарем
	if userID, ok := middleware.UserIDFromContext(r.Context()); !ok || userID != workerID {
		h.logger.Warn("POST /workers/{id}/events - Access denied: worker_id=%d", workerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Декодируем body
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(workerID)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/events - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrInvalidType):
			h.logger.Warn("POST /workers/{id}/events - Invalid event type: worker_id=%d, type=%s",
				workerID, req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, createEvent.ErrInvalidRange):
			h.logger.Warn("POST /workers/{id}/events - Invalid date range: worker_id=%d, range=%s..%s",
				workerID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /workers/{id}/events - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /workers/{id}/events - Failed to create event: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/events - Event created successfully: event_id=%d, worker_id=%d, superseded=%d",
		result.ID, workerID, result.SupersededCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
