package create_event

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для создания события календаря
//
// Событие создается поверх существующих без их удаления (last write wins):
// в той же сериализуемой транзакции подсчитывается, сколько существующих
// событий перекрывает новый диапазон, и счетчик возвращается клиенту как
// согласованное предупреждение о перезаписи.
type UseCase struct {
	eventRepo EventRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: worker=%d, type=%s, range=%s..%s",
		req.WorkerID, req.Type,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)

	var result *domain.CalendarEvent
	var superseded int

	// 2. Подсчет перекрываемых событий и вставка в одной сериализуемой транзакции,
	// чтобы счетчик соответствовал фактически перекрытым событиям
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Существующие события, пересекающие новый диапазон (с блокировкой FOR UPDATE)
		overlapping, err := uc.eventRepo.GetByWindow(txCtx, req.WorkerID, start, end)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to get overlapping events: %v", err)
			return fmt.Errorf("%w: failed to get overlapping events: %v", ErrInternal, err)
		}
		superseded = len(overlapping)

		// 2.2. Вставка нового события
		event := &domain.CalendarEvent{
			WorkerID:  req.WorkerID,
			Type:      req.Type,
			Title:     req.Title,
			StartDate: start,
			EndDate:   end,
		}

		created, err := uc.eventRepo.Create(txCtx, event)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if superseded > 0 {
		uc.logger.Info("CreateEvent: event id=%d overlays %d existing events", result.ID, superseded)
	} else {
		uc.logger.Info("CreateEvent: successfully created event id=%d", result.ID)
	}

	return &Response{
		ID:              result.ID,
		WorkerID:        result.WorkerID,
		Type:            result.Type,
		Title:           result.Title,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		SupersededCount: superseded,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
