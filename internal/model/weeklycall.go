package model

// CallStatus tracks a weekly call entry.
type CallStatus string

// Call statuses.
const (
	CallTodo   CallStatus = "todo"
	CallUrgent CallStatus = "urgent"
	CallDone   CallStatus = "done"
)

// IsValidCallStatus reports whether s is a known call status.
func IsValidCallStatus(s CallStatus) bool {
	switch s {
	case CallTodo, CallUrgent, CallDone:
		return true
	}
	return false
}

// Rank orders call statuses for display: urgent first, done last.
func (s CallStatus) Rank() int {
	switch s {
	case CallUrgent:
		return 0
	case CallTodo:
		return 1
	case CallDone:
		return 2
	}
	return 3
}

// WeeklyCall is one entry of the weekly call sheet. The full sheet is
// regenerated from the member list when the ISO week rolls over, so entries
// never carry state across weeks.
type WeeklyCall struct {
	MemberID string     `json:"memberId"`
	Status   CallStatus `json:"status"`
}
