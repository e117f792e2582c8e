// Package app owns the in-memory record store of the organizer and every
// mutating operation on it. All access is serialized through one mutex so
// the reminder tick and CLI handlers never race. Each mutation persists the
// whole state document synchronously, best-effort: a failed save is logged
// and surfaced as a toast, the in-memory change is kept.
package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/logging"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/storage"
)

// Severity classifies a toast message.
type Severity string

// Toast severities.
const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Toaster surfaces short user-facing messages. Implemented by the
// presentation layer.
type Toaster interface {
	Toast(title, message string, severity Severity)
}

// App is the record store and the operations the UI calls into.
type App struct {
	mu    sync.Mutex
	doc   *storage.Document
	store *storage.StateStore
	toast Toaster
	now   func() time.Time
	log   *slog.Logger
}

// Options configures the App.
type Options struct {
	Store   *storage.StateStore
	Toaster Toaster
	// Now is the time source; defaults to time.Now.
	Now func() time.Time
}

// New loads the persisted state and brings the weekly call sheet up to date
// for the current ISO week.
func New(opts Options) (*App, error) {
	doc, err := opts.Store.Load()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("load", "Failed to load stored data", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		doc:   doc,
		store: opts.Store,
		toast: opts.Toaster,
		now:   now,
		log:   logging.L(),
	}

	a.mu.Lock()
	a.ensureCurrentWeekLocked()
	a.mu.Unlock()

	return a, nil
}

// persistLocked writes the document. Must be called with the mutex held.
// Failure does not roll back the in-memory mutation.
func (a *App) persistLocked() {
	if err := a.store.Save(a.doc); err != nil {
		a.log.Error("state save failed", "error", err)
		if a.toast != nil {
			a.toast.Toast("Save failed",
				"Changes are kept in memory but could not be written to disk",
				SeverityError)
		}
	}
}

// LastSaved returns the timestamp of the last successful write.
func (a *App) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.LastSaved
}

// ClearAllData wipes every collection and the persisted document. The empty
// week identifier forces a call-sheet regeneration on next use.
func (a *App) ClearAllData() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.doc = storage.NewDocument()
	if err := a.store.Clear(); err != nil {
		return errors.NewSystemErrorWithOp("reset", "Failed to clear stored data", err)
	}
	return nil
}

// sameDay reports whether two instants fall on the same calendar day in
// their local representation. This is a component comparison, not a rolling
// 24-hour window: 23:59 and 00:05 the next day are different days.
func sameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// recordActivityLocked prepends an audit entry, evicting beyond the cap.
// Callers persist.
func (a *App) recordActivityLocked(typ model.ActivityType, title, description string) {
	entry := model.NewActivity(typ, title, description, a.now())
	a.doc.Activities = append([]*model.Activity{entry}, a.doc.Activities...)
	if len(a.doc.Activities) > model.MaxActivities {
		a.doc.Activities = a.doc.Activities[:model.MaxActivities]
	}
}

// Activities returns the audit log, newest first.
func (a *App) Activities() []*model.Activity {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*model.Activity, len(a.doc.Activities))
	copy(out, a.doc.Activities)
	return out
}

// RecentActivities returns up to n of the newest audit entries.
func (a *App) RecentActivities(n int) []*model.Activity {
	all := a.Activities()
	if len(all) > n {
		all = all[:n]
	}
	return all
}
