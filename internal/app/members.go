package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// MemberParams carries the editable fields of a member.
type MemberParams struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	BirthDate *time.Time
}

// AddMember registers a new member and adds them to the current call sheet.
func (a *App) AddMember(p MemberParams) (*model.Member, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errors.NewUserError("Member name is required", "Provide a non-empty name")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	m := model.NewMember(name, a.now())
	m.Email = p.Email
	m.Phone = p.Phone
	m.Address = p.Address
	m.Notes = p.Notes
	m.BirthDate = p.BirthDate

	a.doc.Members = append(a.doc.Members, m)
	a.doc.WeeklyCalls = append(a.doc.WeeklyCalls, &model.WeeklyCall{
		MemberID: m.ID,
		Status:   model.CallTodo,
	})
	a.recordActivityLocked(model.ActivityMember, "Member added", fmt.Sprintf("%s joined the register", m.Name))
	a.persistLocked()
	return m, nil
}

// UpdateMember replaces the editable fields of a member. Existing visit
// snapshots are deliberately left untouched; only a visit edit resyncs them.
func (a *App) UpdateMember(id string, p MemberParams) (*model.Member, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errors.NewUserError("Member name is required", "Provide a non-empty name")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.memberLocked(id)
	if m == nil {
		return nil, errors.ErrMemberNotFound
	}

	m.Name = name
	m.Email = p.Email
	m.Phone = p.Phone
	m.Address = p.Address
	m.Notes = p.Notes
	m.BirthDate = p.BirthDate

	a.persistLocked()
	return m, nil
}

// DeleteMember removes a member. Their weekly call entry goes with them;
// visits keep their snapshot and are flagged orphaned so history survives.
func (a *App) DeleteMember(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.memberLocked(id)
	if m == nil {
		return errors.ErrMemberNotFound
	}

	members := a.doc.Members[:0]
	for _, other := range a.doc.Members {
		if other.ID != id {
			members = append(members, other)
		}
	}
	a.doc.Members = members

	calls := a.doc.WeeklyCalls[:0]
	for _, c := range a.doc.WeeklyCalls {
		if c.MemberID != id {
			calls = append(calls, c)
		}
	}
	a.doc.WeeklyCalls = calls

	for _, v := range a.doc.Visits {
		if v.MemberID == id {
			v.Orphaned = true
		}
	}

	a.recordActivityLocked(model.ActivityMember, "Member removed", fmt.Sprintf("%s left the register", m.Name))
	a.persistLocked()
	return nil
}

// Member returns a member by id, or ErrMemberNotFound.
func (a *App) Member(id string) (*model.Member, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if m := a.memberLocked(id); m != nil {
		return m, nil
	}
	return nil, errors.ErrMemberNotFound
}

// MemberByName returns the first member whose name matches, ignoring case.
func (a *App) MemberByName(name string) (*model.Member, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, m := range a.doc.Members {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, errors.ErrMemberNotFound
}

// Members returns all members in registration order.
func (a *App) Members() []*model.Member {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Member, len(a.doc.Members))
	copy(out, a.doc.Members)
	return out
}

func (a *App) memberLocked(id string) *model.Member {
	for _, m := range a.doc.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}
