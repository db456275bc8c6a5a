package domain

import "time"

// EventType represents the availability state an event marks on the calendar
type EventType string

const (
	TypeAvailable EventType = "AVAILABLE"
	TypeBusy      EventType = "BUSY"
	TypeBlocked   EventType = "BLOCKED"
)

// Valid returns true if the type belongs to the closed set of event types
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayLabel returns the human-readable label used when an event has no title
func (t EventType) DisplayLabel() string {
	switch t {
	case TypeAvailable:
		return "Свободен"
	case TypeBusy:
		return "Занят"
	case TypeBlocked:
		return "Недоступен"
	default:
		return string(t)
	}
}

// CalendarEvent represents an availability record spanning an inclusive day range
type CalendarEvent struct {
	ID       int64 // 0 = еще не сохранено во внешнем хранилище
	WorkerID int64
	Type     EventType
	Title    string // Опциональная подпись; пустая строка = подпись типа
	// Включительные границы (только дата, без времени суток)
	// Инвариант: StartDate <= EndDate
	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if date falls inside the event's inclusive day range
func (e *CalendarEvent) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(e.StartDate)) && !d.After(DateOnly(e.EndDate))
}

// DisplayTitle returns the event title, falling back to the type's display label
func (e *CalendarEvent) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Type.DisplayLabel()
}

// SpanDays returns the number of calendar days the event covers (inclusive)
func (e *CalendarEvent) SpanDays() int {
	start := DateOnly(e.StartDate)
	end := DateOnly(e.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// DateOnly обнуляет время суток, оставляя только календарную дату
// Результат всегда в UTC: одна и та же календарная дата, выраженная в разных
// часовых поясах, нормализуется в одно значение. Все сравнения дат в движке
// выполняются над нормализованными значениями
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
