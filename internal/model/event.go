package model

import "time"

// Event represents a calendar event. Events are immutable once created,
// there is no edit flow.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time // strictly after Start
	AllDay      bool
}
