package domain

// Business validation constants
const (
	MaxTitleLength = 200
	MaxSpanDays    = 366 // Максимальная длина одного события в днях
	MinMonth       = 1
	MaxMonth       = 12
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// EventTypes список допустимых типов событий (закрытое множество)
var EventTypes = []EventType{
	TypeAvailable,
	TypeBusy,
	TypeBlocked,
}
