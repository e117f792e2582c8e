package app

import (
	"fmt"
	"sort"
	"time"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// VisitParams carries the editable fields of a visit.
type VisitParams struct {
	MemberID string
	Purpose  string
	Date     time.Time
	Status   model.VisitStatus
	Notes    string
}

// AddVisit plans a visit to a member, snapshotting their name and address.
// An unknown member aborts the operation with a user error.
func (a *App) AddVisit(p VisitParams) (*model.Visit, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.memberLocked(p.MemberID)
	if m == nil {
		return nil, errors.NewUserErrorWithField("member", p.MemberID,
			"Member not found", "Check the id with 'shepherd member list'")
	}

	v := model.NewVisit(m, p.Purpose, p.Date)
	v.Notes = p.Notes

	a.doc.Visits = append(a.doc.Visits, v)
	a.sortVisitsLocked()
	a.recordActivityLocked(model.ActivityVisit, "Visit scheduled", fmt.Sprintf("Visit to %s", m.Name))
	a.persistLocked()
	return v, nil
}

// UpdateVisit replaces the editable fields of a visit. Re-targeting the
// visit to a different member resyncs the snapshot fields.
func (a *App) UpdateVisit(id string, p VisitParams) (*model.Visit, error) {
	if !model.IsValidVisitStatus(p.Status) {
		return nil, errors.NewUserErrorWithField("status", string(p.Status),
			"Invalid visit status", "Use pending or completed")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.visitLocked(id)
	if v == nil {
		return nil, errors.ErrVisitNotFound
	}

	if p.MemberID != "" && p.MemberID != v.MemberID {
		m := a.memberLocked(p.MemberID)
		if m == nil {
			return nil, errors.NewUserErrorWithField("member", p.MemberID,
				"Member not found", "Check the id with 'shepherd member list'")
		}
		v.Resync(m)
	}

	v.Purpose = p.Purpose
	v.Date = p.Date
	v.Status = p.Status
	v.Notes = p.Notes

	a.sortVisitsLocked()
	a.persistLocked()
	return v, nil
}

// CompleteVisit marks a pending visit as completed.
func (a *App) CompleteVisit(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.visitLocked(id)
	if v == nil {
		return errors.ErrVisitNotFound
	}
	if v.Status == model.VisitCompleted {
		return nil
	}

	v.Status = model.VisitCompleted
	a.recordActivityLocked(model.ActivityVisit, "Visit completed", fmt.Sprintf("Visit to %s is done", v.MemberName))
	a.persistLocked()
	return nil
}

// DeleteVisit removes a visit.
func (a *App) DeleteVisit(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.visitLocked(id)
	if v == nil {
		return errors.ErrVisitNotFound
	}

	visits := a.doc.Visits[:0]
	for _, other := range a.doc.Visits {
		if other.ID != id {
			visits = append(visits, other)
		}
	}
	a.doc.Visits = visits

	a.recordActivityLocked(model.ActivityVisit, "Visit cancelled", fmt.Sprintf("Visit to %s was cancelled", v.MemberName))
	a.persistLocked()
	return nil
}

// Visit returns a visit by id, or ErrVisitNotFound.
func (a *App) Visit(id string) (*model.Visit, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if v := a.visitLocked(id); v != nil {
		return v, nil
	}
	return nil, errors.ErrVisitNotFound
}

// Visits returns all visits, soonest first.
func (a *App) Visits() []*model.Visit {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Visit, len(a.doc.Visits))
	copy(out, a.doc.Visits)
	return out
}

func (a *App) visitLocked(id string) *model.Visit {
	for _, v := range a.doc.Visits {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (a *App) sortVisitsLocked() {
	sort.SliceStable(a.doc.Visits, func(i, j int) bool {
		return a.doc.Visits[i].Date.Before(a.doc.Visits[j].Date)
	})
}
