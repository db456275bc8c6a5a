package domain

import "time"

// Holiday represents a production-calendar holiday marker
// Sourced externally, never created or edited by this service's calendar engine
type Holiday struct {
	Date time.Time
	Name string
}

// On returns true if the holiday falls on the given calendar day
func (h *Holiday) On(date time.Time) bool {
	return SameDay(h.Date, date)
}
