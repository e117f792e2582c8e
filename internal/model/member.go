package model

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a congregation member.
type Member struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	JoinDate  time.Time  `json:"joinDate"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// NewMember creates a member with a fresh identifier and the given join date.
func NewMember(name string, joined time.Time) *Member {
	return &Member{
		ID:       uuid.New().String(),
		Name:     name,
		JoinDate: joined,
	}
}

// Age returns the member's age in full years at the given instant, or -1 if
// no birth date is recorded.
func (m *Member) Age(now time.Time) int {
	if m.BirthDate == nil {
		return -1
	}
	years := now.Year() - m.BirthDate.Year()
	anniversary := m.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
