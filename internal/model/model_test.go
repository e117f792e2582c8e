package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetResolve(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		expected Tab
	}{
		{"tab_target", TabTarget(TabCalling), TabCalling},
		{"event_target", EventTarget("e1"), TabCalendar},
		{"visit_target", VisitTarget("v1"), TabVisits},
		{"sermon_target", SermonTarget("s1"), TabSermons},
		{"empty_target", Target{}, TabDashboard},
		{"unknown_kind", Target{Kind: "bogus"}, TabDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.target.Resolve())
		})
	}
}

func TestCallStatusRank(t *testing.T) {
	assert.Equal(t, 0, CallUrgent.Rank())
	assert.Equal(t, 1, CallTodo.Rank())
	assert.Equal(t, 2, CallDone.Rank())
	assert.Equal(t, 3, CallStatus("bogus").Rank())
}

func TestIsValidCallStatus(t *testing.T) {
	assert.True(t, IsValidCallStatus(CallTodo))
	assert.True(t, IsValidCallStatus(CallUrgent))
	assert.True(t, IsValidCallStatus(CallDone))
	assert.False(t, IsValidCallStatus("pending"))
	assert.False(t, IsValidCallStatus(""))
}

func TestMemberAge(t *testing.T) {
	now := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

	t.Run("no_birth_date", func(t *testing.T) {
		m := NewMember("Mary", now)
		assert.Equal(t, -1, m.Age(now))
	})

	t.Run("birthday_passed", func(t *testing.T) {
		m := NewMember("Mary", now)
		birth := time.Date(1957, 3, 4, 0, 0, 0, 0, time.Local)
		m.BirthDate = &birth
		assert.Equal(t, 67, m.Age(now))
	})

	t.Run("birthday_ahead", func(t *testing.T) {
		m := NewMember("Mary", now)
		birth := time.Date(1957, 11, 20, 0, 0, 0, 0, time.Local)
		m.BirthDate = &birth
		assert.Equal(t, 66, m.Age(now))
	})
}

func TestVisitResync(t *testing.T) {
	m := NewMember("Mary Smith", time.Now())
	m.Address = "12 Chapel Lane"

	v := NewVisit(m, "Follow-up", time.Now())
	require.Equal(t, "Mary Smith", v.MemberName)
	require.Equal(t, "12 Chapel Lane", v.Address)
	assert.True(t, v.IsPending())

	moved := NewMember("John Baker", time.Now())
	moved.Address = "3 Mill Road"
	v.Orphaned = true
	v.Resync(moved)

	assert.Equal(t, moved.ID, v.MemberID)
	assert.Equal(t, "John Baker", v.MemberName)
	assert.Equal(t, "3 Mill Road", v.Address)
	assert.False(t, v.Orphaned)
}

func TestEventSetDate(t *testing.T) {
	date := time.Date(2024, 3, 14, 18, 30, 0, 0, time.Local)
	e := NewEvent("Bible study", date, "Parish hall")
	assert.Equal(t, "18:30", e.Time)

	e.SetDate(time.Date(2024, 3, 14, 9, 5, 0, 0, time.Local))
	assert.Equal(t, "09:05", e.Time)
}

func TestNewNotificationIDs(t *testing.T) {
	at := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)
	n := NewNotification(NotifyReminder, "t", "m", Target{}, at)
	assert.Equal(t, "1710324000000000000", n.ID)
	assert.False(t, n.Read)
}

func TestDetectWebhookType(t *testing.T) {
	assert.Equal(t, WebhookTypeDiscord, DetectWebhookType("https://discord.com/api/webhooks/1/a"))
	assert.Equal(t, WebhookTypeSlack, DetectWebhookType("https://hooks.slack.com/services/T/B/x"))
	assert.Equal(t, WebhookTypeGeneric, DetectWebhookType("https://example.com/hook"))
}

func TestIsValidWebhookName(t *testing.T) {
	assert.True(t, IsValidWebhookName("study-group"))
	assert.True(t, IsValidWebhookName("hook_1"))
	assert.False(t, IsValidWebhookName(""))
	assert.False(t, IsValidWebhookName("has spaces"))
}
