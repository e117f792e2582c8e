package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxActivities caps the audit log; the oldest entries are evicted first.
const MaxActivities = 20

// ActivityType tags an audit log entry with the area it came from.
type ActivityType string

// Activity types.
const (
	ActivityGeneral ActivityType = "general"
	ActivityMember  ActivityType = "member"
	ActivitySermon  ActivityType = "sermon"
	ActivityVisit   ActivityType = "visit"
	ActivityEvent   ActivityType = "event"
	ActivityCalls   ActivityType = "calls"
)

// Activity is an append-only audit log entry recording a user action.
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Type        ActivityType `json:"type"`
}

// NewActivity creates an audit entry stamped with the given instant.
func NewActivity(typ ActivityType, title, description string, at time.Time) *Activity {
	return &Activity{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Date:        at,
		Type:        typ,
	}
}
