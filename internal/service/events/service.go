package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	"github.com/m04kA/SMC-CalendarService/internal/service/events/models"
)

// Service сервис для работы с календарем доступности
type Service struct {
	eventRepo   EventRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	eventRepo EventRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *Service {
	return &Service{
		eventRepo:   eventRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// ListWindow возвращает полное месячное окно за один запрос:
// все события исполнителя, пересекающие месяц, и праздники месяца
func (s *Service) ListWindow(ctx context.Context, req *models.WindowRequest) (*models.WindowData, error) {
	s.logger.Info("ListWindow: fetching window %d-%02d for worker=%d", req.Year, req.Month, req.WorkerID)

	if req.WorkerID <= 0 {
		s.logger.Warn("ListWindow: invalid workerID=%d", req.WorkerID)
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.Month < domain.MinMonth || req.Month > domain.MaxMonth {
		s.logger.Warn("ListWindow: invalid month=%d for worker=%d", req.Month, req.WorkerID)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	// Границы месячного окна (включительно)
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	events, err := s.eventRepo.GetByWindow(ctx, req.WorkerID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("ListWindow: repository error for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: ListWindow - repository error: %v", ErrInternal, err)
	}

	holidays, err := s.holidayRepo.GetByWindow(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("ListWindow: holiday repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWindow - holiday repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListWindow: window %d-%02d for worker=%d: %d events, %d holidays",
		req.Year, req.Month, req.WorkerID, len(events), len(holidays))

	return &models.WindowData{
		Events:   events,
		Holidays: holidays,
	}, nil
}

// Delete удаляет событие исполнителя по id
func (s *Service) Delete(ctx context.Context, req *models.DeleteEventRequest) error {
	s.logger.Info("Delete: deleting event id=%d for worker=%d", req.EventID, req.WorkerID)

	if req.WorkerID <= 0 || req.EventID <= 0 {
		s.logger.Warn("Delete: invalid input worker=%d, event=%d", req.WorkerID, req.EventID)
		return fmt.Errorf("%w: workerID and eventID must be positive", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, req.WorkerID, req.EventID); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found for worker=%d", req.EventID, req.WorkerID)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", req.EventID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event id=%d for worker=%d", req.EventID, req.WorkerID)
	return nil
}
