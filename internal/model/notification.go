package model

import (
	"strconv"
	"time"
)

// NotificationType defines the type of an in-app notification.
type NotificationType string

// Notification types.
const (
	NotifyReminder NotificationType = "reminder"
	NotifyInfo     NotificationType = "info"
)

// TargetKind discriminates the click target of a notification.
type TargetKind string

// Target kinds.
const (
	TargetNone   TargetKind = ""
	TargetTab    TargetKind = "tab"
	TargetEvent  TargetKind = "event"
	TargetVisit  TargetKind = "visit"
	TargetSermon TargetKind = "sermon"
)

// Target is the closed click-routing payload of a notification. Exactly one
// interpretation applies, selected by Kind.
type Target struct {
	Kind TargetKind `json:"kind,omitempty"`
	Tab  Tab        `json:"tab,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// TabTarget routes a click to a named tab.
func TabTarget(tab Tab) Target {
	return Target{Kind: TargetTab, Tab: tab}
}

// EventTarget routes a click to the calendar tab for the given event.
func EventTarget(id string) Target {
	return Target{Kind: TargetEvent, ID: id}
}

// VisitTarget routes a click to the visits tab for the given visit.
func VisitTarget(id string) Target {
	return Target{Kind: TargetVisit, ID: id}
}

// SermonTarget routes a click to the sermons tab for the given sermon.
func SermonTarget(id string) Target {
	return Target{Kind: TargetSermon, ID: id}
}

// Resolve returns the tab a click on this target navigates to.
func (t Target) Resolve() Tab {
	switch t.Kind {
	case TargetTab:
		return t.Tab
	case TargetEvent:
		return TabCalendar
	case TargetVisit:
		return TabVisits
	case TargetSermon:
		return TabSermons
	}
	return TabDashboard
}

// Notification is an in-app notification. At most one notification with the
// same title and message is created per calendar day.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
	Target  Target           `json:"target,omitempty"`
}

// NewNotification creates an unread notification stamped with the given
// instant. Identifiers are timestamp-based.
func NewNotification(typ NotificationType, title, message string, target Target, at time.Time) *Notification {
	return &Notification{
		ID:      strconv.FormatInt(at.UnixNano(), 10),
		Title:   title,
		Message: message,
		Type:    typ,
		Date:    at,
		Target:  target,
	}
}
