package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// EventParams carries the editable fields of a calendar event.
type EventParams struct {
	Title       string
	Date        time.Time
	Location    string
	Description string
}

// AddEvent puts a new event on the calendar.
func (a *App) AddEvent(p EventParams) (*model.Event, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, errors.NewUserError("Event title is required", "Provide a non-empty title")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	e := model.NewEvent(title, p.Date, p.Location)
	e.Description = p.Description

	a.doc.Events = append(a.doc.Events, e)
	a.sortEventsLocked()
	a.recordActivityLocked(model.ActivityEvent, "Event created", fmt.Sprintf("%q was planned", e.Title))
	a.persistLocked()
	return e, nil
}

// UpdateEvent replaces the editable fields of an event. The derived
// time-of-day string follows the new date.
func (a *App) UpdateEvent(id string, p EventParams) (*model.Event, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, errors.NewUserError("Event title is required", "Provide a non-empty title")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	e := a.eventLocked(id)
	if e == nil {
		return nil, errors.ErrEventNotFound
	}

	e.Title = title
	e.SetDate(p.Date)
	e.Location = p.Location
	e.Description = p.Description

	a.sortEventsLocked()
	a.persistLocked()
	return e, nil
}

// DeleteEvent removes an event from the calendar.
func (a *App) DeleteEvent(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	e := a.eventLocked(id)
	if e == nil {
		return errors.ErrEventNotFound
	}

	events := a.doc.Events[:0]
	for _, other := range a.doc.Events {
		if other.ID != id {
			events = append(events, other)
		}
	}
	a.doc.Events = events

	a.recordActivityLocked(model.ActivityEvent, "Event removed", fmt.Sprintf("%q was removed", e.Title))
	a.persistLocked()
	return nil
}

// Event returns an event by id, or ErrEventNotFound.
func (a *App) Event(id string) (*model.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if e := a.eventLocked(id); e != nil {
		return e, nil
	}
	return nil, errors.ErrEventNotFound
}

// Events returns all events, soonest first.
func (a *App) Events() []*model.Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Event, len(a.doc.Events))
	copy(out, a.doc.Events)
	return out
}

func (a *App) eventLocked(id string) *model.Event {
	for _, e := range a.doc.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (a *App) sortEventsLocked() {
	sort.SliceStable(a.doc.Events, func(i, j int) bool {
		return a.doc.Events[i].Date.Before(a.doc.Events[j].Date)
	})
}
