package app

import (
	"fmt"
	"sort"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/week"
)

// EnsureCurrentWeek regenerates the weekly call sheet when the stored week
// identifier no longer matches the current ISO week. Previous statuses are
// discarded, every member starts at todo. Returns true when a regeneration
// happened. Called at startup and on every reminder tick, so long sessions
// crossing a week boundary roll over too.
func (a *App) EnsureCurrentWeek() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ensureCurrentWeekLocked()
}

func (a *App) ensureCurrentWeekLocked() bool {
	current := week.ID(a.now())
	if current == a.doc.WeekIdentifier {
		return false
	}

	calls := make([]*model.WeeklyCall, 0, len(a.doc.Members))
	for _, m := range a.doc.Members {
		calls = append(calls, &model.WeeklyCall{MemberID: m.ID, Status: model.CallTodo})
	}
	a.doc.WeeklyCalls = calls
	a.doc.WeekIdentifier = current

	a.recordActivityLocked(model.ActivityCalls, "New call week",
		fmt.Sprintf("Call sheet generated for %d members", len(calls)))
	a.persistLocked()
	return true
}

// UpdateCallStatus sets the call status for a member. An unknown member is a
// silent no-op: the member may have been removed after the sheet was
// generated. Returns true when an entry actually changed.
func (a *App) UpdateCallStatus(memberID string, status model.CallStatus) (bool, error) {
	if !model.IsValidCallStatus(status) {
		return false, errors.NewUserErrorWithField("status", string(status),
			"Invalid call status", "Use todo, urgent or done")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, c := range a.doc.WeeklyCalls {
		if c.MemberID == memberID {
			if c.Status == status {
				return false, nil
			}
			c.Status = status
			a.persistLocked()
			return true, nil
		}
	}
	return false, nil
}

// CallEntry pairs a call sheet entry with its member for display.
type CallEntry struct {
	Call   *model.WeeklyCall
	Member *model.Member
}

// CallSheet returns the current sheet ordered urgent, todo, done; ties keep
// the original member order. Entries whose member no longer exists are
// skipped.
func (a *App) CallSheet() []CallEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	calls := make([]*model.WeeklyCall, len(a.doc.WeeklyCalls))
	copy(calls, a.doc.WeeklyCalls)
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].Status.Rank() < calls[j].Status.Rank()
	})

	entries := make([]CallEntry, 0, len(calls))
	for _, c := range calls {
		m := a.memberLocked(c.MemberID)
		if m == nil {
			continue
		}
		entries = append(entries, CallEntry{Call: c, Member: m})
	}
	return entries
}

// CallSummary returns how many calls are done out of the sheet total.
func (a *App) CallSummary() (done, total int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, c := range a.doc.WeeklyCalls {
		if c.Status == model.CallDone {
			done++
		}
	}
	return done, len(a.doc.WeeklyCalls)
}

// UrgentCallCount returns the number of entries currently marked urgent.
func (a *App) UrgentCallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, c := range a.doc.WeeklyCalls {
		if c.Status == model.CallUrgent {
			n++
		}
	}
	return n
}

// WeekIdentifier returns the ISO week the current sheet was generated for.
func (a *App) WeekIdentifier() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.WeekIdentifier
}
