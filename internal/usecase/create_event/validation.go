package create_event

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if !req.Type.Valid() {
		return fmt.Errorf("%w: %q is not one of AVAILABLE, BUSY, BLOCKED", ErrInvalidType, req.Type)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)

	if end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidRange)
	}

	spanDays := int(end.Sub(start).Hours()/24) + 1
	if spanDays > domain.MaxSpanDays {
		return fmt.Errorf("%w: span of %d days exceeds maximum of %d", ErrInvalidRange, spanDays, domain.MaxSpanDays)
	}

	return nil
}
