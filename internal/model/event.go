package model

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a calendar event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // derived HH:MM of Date
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
}

// NewEvent creates an event with a fresh identifier. The time-of-day string
// is derived from the date.
func NewEvent(title string, date time.Time, location string) *Event {
	e := &Event{
		ID:       uuid.New().String(),
		Title:    title,
		Location: location,
	}
	e.SetDate(date)
	return e
}

// SetDate updates the event instant and the derived time-of-day string.
func (e *Event) SetDate(date time.Time) {
	e.Date = date
	e.Time = date.Format("15:04")
}
