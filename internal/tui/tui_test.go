package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/storage"
	"github.com/shepherd-cli/shepherd/internal/testfixtures"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := testfixtures.NewClock(time.Time{})
	organizer, err := app.New(app.Options{
		Store: storage.NewStateStore(db),
		Now:   clock.NowFunc(),
	})
	require.NoError(t, err)
	return organizer
}

func TestNewDashboardModel(t *testing.T) {
	m := NewDashboardModel(Config{App: newTestApp(t)})
	assert.Equal(t, model.TabDashboard, m.tab)
	assert.Equal(t, time.Second, m.refreshInterval)
}

func TestDashboardTabSwitching(t *testing.T) {
	m := NewDashboardModel(Config{App: newTestApp(t)})

	m.selectTab(1)
	assert.Equal(t, model.TabMembers, m.tab)

	m.selectTab(-1)
	assert.Equal(t, model.TabDashboard, m.tab)

	// Wraps around
	m.selectTab(-1)
	assert.Equal(t, model.TabNotifications, m.tab)
}

func TestDashboardNumberKeys(t *testing.T) {
	m := NewDashboardModel(Config{App: newTestApp(t)})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'6'}})
	dm := updated.(*DashboardModel)
	assert.Equal(t, model.TabCalling, dm.tab)
}

func TestDashboardView(t *testing.T) {
	organizer := newTestApp(t)
	_, err := organizer.AddMember(app.MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)

	m := NewDashboardModel(Config{App: organizer})
	m.width = 100
	m.height = 40
	m.loadData()

	t.Run("overview", func(t *testing.T) {
		view := m.View()
		assert.Contains(t, view, "Shepherd")
		assert.Contains(t, view, "Members: 1")
	})

	t.Run("members_tab", func(t *testing.T) {
		m.tab = model.TabMembers
		assert.Contains(t, m.View(), "Mary Smith")
	})

	t.Run("calling_tab", func(t *testing.T) {
		m.tab = model.TabCalling
		view := m.View()
		assert.Contains(t, view, "Mary Smith")
		assert.Contains(t, view, "todo")
	})
}

func TestDashboardActivateNotification(t *testing.T) {
	organizer := newTestApp(t)
	organizer.AddNotification(model.NotifyReminder, "Urgent calls waiting",
		"You have 2 urgent calls to make.", model.TabTarget(model.TabCalling))

	m := NewDashboardModel(Config{App: organizer})
	m.width = 100
	m.loadData()
	m.tab = model.TabNotifications
	m.cursor = 0

	updated, _ := m.activate()
	dm := updated.(*DashboardModel)

	assert.Equal(t, model.TabCalling, dm.tab)
	assert.Zero(t, dm.organizer.UnreadCount())
}

func TestDashboardCallStatusKeys(t *testing.T) {
	organizer := newTestApp(t)
	member, err := organizer.AddMember(app.MemberParams{Name: "John Baker"})
	require.NoError(t, err)

	m := NewDashboardModel(Config{App: organizer})
	m.width = 100
	m.loadData()
	m.tab = model.TabCalling
	m.cursor = 0

	m.setCallStatus(model.CallUrgent)

	sheet := organizer.CallSheet()
	require.Len(t, sheet, 1)
	assert.Equal(t, member.ID, sheet[0].Member.ID)
	assert.Equal(t, model.CallUrgent, sheet[0].Call.Status)
}

func TestBadge(t *testing.T) {
	assert.Empty(t, Badge(""))
	assert.Contains(t, Badge("3"), "3")
	assert.Contains(t, Badge("99+"), "99+")
}
