package reminder

import (
	"fmt"
	"time"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// leadLabel renders a lead time the way it reads in a reminder title
// ("30 minutes", "1 hour").
func leadLabel(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	m := int(d / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

// sameDay compares the local calendar-day components of two instants.
func sameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// checkEvents reminds about events starting within the event lead time.
// The window is half-open: strictly after now, at most now+lead.
func (e *Engine) checkEvents(now time.Time) {
	lead := e.cfg.EventLeadDuration()
	horizon := now.Add(lead)
	title := fmt.Sprintf("Event in %s", leadLabel(lead))

	for _, ev := range e.app.Events() {
		if ev.Date.After(now) && !ev.Date.After(horizon) {
			message := fmt.Sprintf("%s at %s", ev.Title, ev.Location)
			e.emit(title, message, model.EventTarget(ev.ID))
		}
	}
}

// checkVisits reminds about pending visits later today that start within the
// visit lead time. Visits on a different calendar day never match, even when
// inside the window across midnight.
func (e *Engine) checkVisits(now time.Time) {
	lead := e.cfg.VisitLeadDuration()
	horizon := now.Add(lead)
	title := fmt.Sprintf("Visit in %s", leadLabel(lead))

	for _, v := range e.app.Visits() {
		if !v.IsPending() {
			continue
		}
		if sameDay(v.Date, now) && v.Date.After(now) && !v.Date.After(horizon) {
			message := fmt.Sprintf("Visit to %s - %s", v.MemberName, v.Purpose)
			e.emit(title, message, model.VisitTarget(v.ID))
		}
	}
}

// checkSermons reminds once a day about draft sermons scheduled for the day
// that lies one sermon-lead ahead ("tomorrow" by default).
func (e *Engine) checkSermons(now time.Time) {
	target := now.Add(e.cfg.SermonLead())

	for _, s := range e.app.Sermons() {
		if s.Status != model.SermonDraft {
			continue
		}
		if sameDay(s.Date, target) {
			message := fmt.Sprintf("%q is scheduled for tomorrow", s.Title)
			e.emit("Sermon to prepare", message, model.SermonTarget(s.ID))
		}
	}
}

// checkUrgentCalls emits one aggregate reminder for urgent call entries, but
// only on the configured weekdays (Tuesday through Saturday by default;
// Sunday and Monday stay quiet).
func (e *Engine) checkUrgentCalls(now time.Time) {
	if !e.cfg.UrgentWeekdays()[now.Weekday()] {
		return
	}

	urgent := e.app.UrgentCallCount()
	if urgent == 0 {
		return
	}

	message := fmt.Sprintf("You have %d urgent calls to make.", urgent)
	e.emit("Urgent calls waiting", message, model.TabTarget(model.TabCalling))
}
