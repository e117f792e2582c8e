package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// SermonParams carries the editable fields of a sermon.
type SermonParams struct {
	Title     string
	Scripture string
	Date      time.Time
	Duration  int
	Status    model.SermonStatus
	Notes     string
}

// AddSermon records a new sermon. The status defaults to draft.
func (a *App) AddSermon(p SermonParams) (*model.Sermon, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, errors.NewUserError("Sermon title is required", "Provide a non-empty title")
	}
	status := p.Status
	if status == "" {
		status = model.SermonDraft
	}
	if !model.IsValidSermonStatus(status) {
		return nil, errors.NewUserErrorWithField("status", string(status),
			"Invalid sermon status", "Use draft, ready or preached")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s := model.NewSermon(title, p.Scripture, p.Date)
	s.Duration = p.Duration
	s.Status = status
	s.Notes = p.Notes

	a.doc.Sermons = append(a.doc.Sermons, s)
	a.sortSermonsLocked()
	a.recordActivityLocked(model.ActivitySermon, "Sermon added", fmt.Sprintf("%q was added", s.Title))
	a.persistLocked()
	return s, nil
}

// UpdateSermon replaces the editable fields of a sermon.
func (a *App) UpdateSermon(id string, p SermonParams) (*model.Sermon, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, errors.NewUserError("Sermon title is required", "Provide a non-empty title")
	}
	if !model.IsValidSermonStatus(p.Status) {
		return nil, errors.NewUserErrorWithField("status", string(p.Status),
			"Invalid sermon status", "Use draft, ready or preached")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.sermonLocked(id)
	if s == nil {
		return nil, errors.ErrSermonNotFound
	}

	s.Title = title
	s.Scripture = p.Scripture
	s.Date = p.Date
	s.Duration = p.Duration
	s.Status = p.Status
	s.Notes = p.Notes

	a.sortSermonsLocked()
	a.persistLocked()
	return s, nil
}

// DeleteSermon removes a sermon.
func (a *App) DeleteSermon(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.sermonLocked(id)
	if s == nil {
		return errors.ErrSermonNotFound
	}

	sermons := a.doc.Sermons[:0]
	for _, other := range a.doc.Sermons {
		if other.ID != id {
			sermons = append(sermons, other)
		}
	}
	a.doc.Sermons = sermons

	a.recordActivityLocked(model.ActivitySermon, "Sermon removed", fmt.Sprintf("%q was removed", s.Title))
	a.persistLocked()
	return nil
}

// Sermon returns a sermon by id, or ErrSermonNotFound.
func (a *App) Sermon(id string) (*model.Sermon, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s := a.sermonLocked(id); s != nil {
		return s, nil
	}
	return nil, errors.ErrSermonNotFound
}

// Sermons returns all sermons, newest date first.
func (a *App) Sermons() []*model.Sermon {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Sermon, len(a.doc.Sermons))
	copy(out, a.doc.Sermons)
	return out
}

func (a *App) sermonLocked(id string) *model.Sermon {
	for _, s := range a.doc.Sermons {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (a *App) sortSermonsLocked() {
	sort.SliceStable(a.doc.Sermons, func(i, j int) bool {
		return a.doc.Sermons[i].Date.After(a.doc.Sermons[j].Date)
	})
}
