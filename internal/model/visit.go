package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus tracks whether a home visit has happened yet.
type VisitStatus string

// Visit statuses.
const (
	VisitPending   VisitStatus = "pending"
	VisitCompleted VisitStatus = "completed"
)

// IsValidVisitStatus reports whether s is a known visit status.
func IsValidVisitStatus(s VisitStatus) bool {
	return s == VisitPending || s == VisitCompleted
}

// Visit represents a planned or completed home visit. MemberName and Address
// are snapshots of the member taken at creation or last edit; they are not
// live references and only change through an explicit resync.
type Visit struct {
	ID         string      `json:"id"`
	MemberID   string      `json:"memberId"`
	MemberName string      `json:"memberName"`
	Address    string      `json:"address,omitempty"`
	Purpose    string      `json:"purpose"`
	Date       time.Time   `json:"date"`
	Status     VisitStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	// Orphaned marks a visit whose member has since been deleted. The
	// snapshot fields keep the history readable.
	Orphaned bool `json:"orphaned,omitempty"`
}

// NewVisit creates a pending visit snapshotting the given member.
func NewVisit(m *Member, purpose string, date time.Time) *Visit {
	v := &Visit{
		ID:      uuid.New().String(),
		Purpose: purpose,
		Date:    date,
		Status:  VisitPending,
	}
	v.Resync(m)
	return v
}

// Resync refreshes the member snapshot fields from m.
func (v *Visit) Resync(m *Member) {
	v.MemberID = m.ID
	v.MemberName = m.Name
	v.Address = m.Address
	v.Orphaned = false
}

// IsPending returns true if the visit has not been completed.
func (v *Visit) IsPending() bool {
	return v.Status == VisitPending
}
