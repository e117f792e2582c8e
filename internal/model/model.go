// Package model defines the domain models for Shepherd.
package model

// Model is the interface that all individually keyed database models implement.
// The application state document is persisted as a single blob and does not
// go through this interface; only side tables such as webhooks do.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Tab identifies a view in the presentation layer.
type Tab string

// Tabs of the organizer UI.
const (
	TabDashboard     Tab = "dashboard"
	TabMembers       Tab = "members"
	TabSermons       Tab = "sermons"
	TabVisits        Tab = "visits"
	TabCalendar      Tab = "calendar"
	TabCalling       Tab = "calling"
	TabNotifications Tab = "notifications"
)
