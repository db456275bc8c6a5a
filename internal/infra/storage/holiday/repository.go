package holiday

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

// Repository репозиторий производственного календаря (только чтение)
// Праздники загружаются извне и никогда не изменяются этим сервисом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWindow получает праздники в окне [from, to]
func (r *Repository) GetByWindow(ctx context.Context, from, to time.Time) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"holiday_date",
		"name",
	).
		From("holidays").
		Where(squirrel.GtOrEq{"holiday_date": from}).
		Where(squirrel.LtOrEq{"holiday_date": to}).
		OrderBy("holiday_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHolidays(rows)
}

// scanHolidays сканирует результаты запроса в слайс праздников
func (r *Repository) scanHolidays(rows *sql.Rows) ([]*domain.Holiday, error) {
	holidays := make([]*domain.Holiday, 0)

	for rows.Next() {
		var holiday domain.Holiday

		if err := rows.Scan(&holiday.Date, &holiday.Name); err != nil {
			return nil, fmt.Errorf("%w: scanHolidays - scan row: %v", ErrScanRow, err)
		}

		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
