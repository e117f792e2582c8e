package model

import (
	"time"

	"github.com/google/uuid"
)

// SermonStatus tracks the preparation state of a sermon. It is set by the
// user and never advanced automatically.
type SermonStatus string

// Sermon statuses.
const (
	SermonDraft    SermonStatus = "draft"
	SermonReady    SermonStatus = "ready"
	SermonPreached SermonStatus = "preached"
)

// IsValidSermonStatus reports whether s is a known sermon status.
func IsValidSermonStatus(s SermonStatus) bool {
	switch s {
	case SermonDraft, SermonReady, SermonPreached:
		return true
	}
	return false
}

// Sermon represents a sermon and its preparation state.
type Sermon struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Scripture string       `json:"scripture"`
	Date      time.Time    `json:"date"`
	Duration  int          `json:"duration"` // minutes
	Status    SermonStatus `json:"status"`
	Notes     string       `json:"notes,omitempty"`
}

// NewSermon creates a draft sermon with a fresh identifier.
func NewSermon(title, scripture string, date time.Time) *Sermon {
	return &Sermon{
		ID:        uuid.New().String(),
		Title:     title,
		Scripture: scripture,
		Date:      date,
		Status:    SermonDraft,
	}
}
