package app

import (
	"sort"
	"time"

	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/week"
)

// Overview summarizes the state for the dashboard.
type Overview struct {
	MemberCount    int
	SermonCount    int
	TodayEvents    int
	VisitsThisWeek int
	CallsDone      int
	CallsTotal     int
	Unread         int
	WeekIdentifier string
}

// Overview computes the dashboard counters.
func (a *App) Overview() Overview {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	o := Overview{
		MemberCount:    len(a.doc.Members),
		SermonCount:    len(a.doc.Sermons),
		CallsTotal:     len(a.doc.WeeklyCalls),
		WeekIdentifier: a.doc.WeekIdentifier,
	}

	for _, e := range a.doc.Events {
		if sameDay(e.Date, now) {
			o.TodayEvents++
		}
	}
	thisWeek := week.ID(now)
	for _, v := range a.doc.Visits {
		if week.ID(v.Date) == thisWeek {
			o.VisitsThisWeek++
		}
	}
	for _, c := range a.doc.WeeklyCalls {
		if c.Status == model.CallDone {
			o.CallsDone++
		}
	}
	for _, n := range a.doc.Notifications {
		if !n.Read {
			o.Unread++
		}
	}
	return o
}

// UpcomingItem is an event or pending visit ahead of now, merged for the
// dashboard list.
type UpcomingItem struct {
	Kind   string // "event" or "visit"
	ID     string
	Title  string
	Detail string
	Date   time.Time
}

// UpcomingItems returns up to limit future events and pending visits sorted
// by date.
func (a *App) UpcomingItems(limit int) []UpcomingItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	var items []UpcomingItem

	for _, e := range a.doc.Events {
		if e.Date.After(now) {
			items = append(items, UpcomingItem{
				Kind:   "event",
				ID:     e.ID,
				Title:  e.Title,
				Detail: e.Location,
				Date:   e.Date,
			})
		}
	}
	for _, v := range a.doc.Visits {
		if v.IsPending() && v.Date.After(now) {
			items = append(items, UpcomingItem{
				Kind:   "visit",
				ID:     v.ID,
				Title:  "Visit to " + v.MemberName,
				Detail: v.Purpose,
				Date:   v.Date,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// TodayEvents returns the events on the current calendar day, soonest first.
func (a *App) TodayEvents() []*model.Event {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	var out []*model.Event
	for _, e := range a.doc.Events {
		if sameDay(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}
