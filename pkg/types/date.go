package types

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString строковое представление календарной даты в формате YYYY-MM-DD
// Используется в HTTP моделях и при работе с БД, где важна только дата без времени
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// Time конвертирует DateString в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
