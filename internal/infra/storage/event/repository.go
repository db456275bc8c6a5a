package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с событиями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие календаря
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_events").
		Columns(
			"worker_id",
			"event_type",
			"title",
			"start_date",
			"end_date",
		).
		Values(
			event.WorkerID,
			event.Type,
			event.Title,
			event.StartDate,
			event.EndDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByWindow получает все события исполнителя, чей включительный диапазон
// пересекает окно [from, to]
// Порядок: id по возрастанию - при пересечении событий на одной дате
// созданное последним определяет отображение ячейки
func (r *Repository) GetByWindow(ctx context.Context, workerID int64, from, to time.Time) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"worker_id",
		"event_type",
		"title",
		"start_date",
		"end_date",
		"created_at",
		"updated_at",
	).
		From("calendar_events").
		Where(squirrel.Eq{"worker_id": workerID}).
		// Включительное пересечение диапазонов: start <= to AND end >= from
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		OrderBy("id ASC")

	// В транзакции блокируем строки окна (usecase создания события)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// Delete удаляет событие исполнителя по id (физическое удаление)
func (r *Repository) Delete(ctx context.Context, workerID int64, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_events").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"worker_id": workerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// scanEvents сканирует результаты запроса в слайс событий
func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	events := make([]*domain.CalendarEvent, 0)

	for rows.Next() {
		var event domain.CalendarEvent
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.WorkerID,
			&event.Type,
			&event.Title,
			&event.StartDate,
			&event.EndDate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time
		event.UpdatedAt = updatedAt.Time

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
