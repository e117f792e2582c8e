package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded.
type refreshMsg struct{}

// tabOrder is the left-to-right tab layout.
var tabOrder = []model.Tab{
	model.TabDashboard,
	model.TabMembers,
	model.TabSermons,
	model.TabVisits,
	model.TabCalendar,
	model.TabCalling,
	model.TabNotifications,
}

var tabLabels = map[model.Tab]string{
	model.TabDashboard:     "Dashboard",
	model.TabMembers:       "Members",
	model.TabSermons:       "Sermons",
	model.TabVisits:        "Visits",
	model.TabCalendar:      "Calendar",
	model.TabCalling:       "Calling",
	model.TabNotifications: "Notifications",
}

// DashboardModel is the main bubbletea model for the organizer.
type DashboardModel struct {
	organizer *app.App

	// Data snapshot
	overview      app.Overview
	members       []*model.Member
	sermons       []*model.Sermon
	visits        []*model.Visit
	events        []*model.Event
	calls         []app.CallEntry
	notifications []*model.Notification
	activities    []*model.Activity
	badge         string

	// UI state
	tab        model.Tab
	cursor     int
	width      int
	height     int
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// Config holds configuration for the dashboard.
type Config struct {
	App             *app.App
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(cfg Config) *DashboardModel {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Second
	}
	return &DashboardModel{
		organizer:       cfg.App,
		tab:             model.TabDashboard,
		refreshInterval: cfg.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), func() tea.Msg { return refreshMsg{} })
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.selectTab(1)
		return m, nil

	case "shift+tab", "left", "h":
		m.selectTab(-1)
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(msg.String()[0] - '1')
		if idx < len(tabOrder) {
			m.tab = tabOrder[idx]
			m.cursor = 0
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil

	case "enter":
		return m.activate()

	case "u", "t", "d":
		if m.tab == model.TabCalling {
			m.setCallStatus(statusForKey(msg.String()))
		}
		return m, nil

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

func statusForKey(key string) model.CallStatus {
	switch key {
	case "u":
		return model.CallUrgent
	case "d":
		return model.CallDone
	default:
		return model.CallTodo
	}
}

// activate acts on the cursor row of the current tab. On the notifications
// tab it marks the notification read and follows its click target.
func (m *DashboardModel) activate() (tea.Model, tea.Cmd) {
	if m.tab != model.TabNotifications || m.cursor >= len(m.notifications) {
		return m, nil
	}

	n := m.notifications[m.cursor]
	m.organizer.MarkNotificationRead(n.ID)
	m.tab = n.Target.Resolve()
	m.cursor = 0
	m.loadData()
	return m, nil
}

func (m *DashboardModel) setCallStatus(status model.CallStatus) {
	if m.cursor >= len(m.calls) {
		return
	}
	entry := m.calls[m.cursor]
	if _, err := m.organizer.UpdateCallStatus(entry.Member.ID, status); err != nil {
		m.setMessage(err.Error(), 3*time.Second)
		return
	}
	m.loadData()
}

func (m *DashboardModel) selectTab(delta int) {
	for i, t := range tabOrder {
		if t == m.tab {
			m.tab = tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
			m.cursor = 0
			return
		}
	}
}

func (m *DashboardModel) cursorMax() int {
	switch m.tab {
	case model.TabMembers:
		return len(m.members) - 1
	case model.TabSermons:
		return len(m.sermons) - 1
	case model.TabVisits:
		return len(m.visits) - 1
	case model.TabCalendar:
		return len(m.events) - 1
	case model.TabCalling:
		return len(m.calls) - 1
	case model.TabNotifications:
		return len(m.notifications) - 1
	}
	return 0
}

// loadData refreshes the UI snapshot from the organizer.
func (m *DashboardModel) loadData() {
	m.organizer.EnsureCurrentWeek()
	m.overview = m.organizer.Overview()
	m.members = m.organizer.Members()
	m.sermons = m.organizer.Sermons()
	m.visits = m.organizer.Visits()
	m.events = m.organizer.Events()
	m.calls = m.organizer.CallSheet()
	m.notifications = m.organizer.Notifications()
	m.activities = m.organizer.RecentActivities(8)
	m.badge = m.organizer.BadgeLabel()

	if max := m.cursorMax(); m.cursor > max && max >= 0 {
		m.cursor = max
	}
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{m.renderHeader(), m.renderTabs()}

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderBody(), m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Shepherd")
	week := StyleSubtitle.Render(m.overview.WeekIdentifier)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", week) + "\n"
}

func (m *DashboardModel) renderTabs() string {
	parts := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		label := tabLabels[t]
		if t == model.TabNotifications && m.badge != "" {
			label += " " + Badge(m.badge)
		}
		if t == m.tab {
			parts = append(parts, StyleTabActive.Render(label))
		} else {
			parts = append(parts, StyleTabInactive.Render(label))
		}
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m *DashboardModel) renderBody() string {
	switch m.tab {
	case model.TabMembers:
		return m.renderMembers()
	case model.TabSermons:
		return m.renderSermons()
	case model.TabVisits:
		return m.renderVisits()
	case model.TabCalendar:
		return m.renderEvents()
	case model.TabCalling:
		return m.renderCalls()
	case model.TabNotifications:
		return m.renderNotifications()
	}
	return m.renderOverview()
}

func (m *DashboardModel) renderOverview() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Members: %d    Sermons: %d    Events today: %d\n",
		m.overview.MemberCount, m.overview.SermonCount, m.overview.TodayEvents)
	fmt.Fprintf(&b, "Visits this week: %d    Calls done: %d/%d\n\n",
		m.overview.VisitsThisWeek, m.overview.CallsDone, m.overview.CallsTotal)

	b.WriteString(StyleSubtitle.Render("Recent activity") + "\n")
	if len(m.activities) == 0 {
		b.WriteString("  nothing yet\n")
	}
	for _, act := range m.activities {
		fmt.Fprintf(&b, "  %s  %s\n", act.Date.Local().Format("Jan 2 15:04"), act.Title)
	}
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderMembers() string {
	if len(m.members) == 0 {
		return StyleBox.Render("No members yet.")
	}
	var b strings.Builder
	for i, mem := range m.members {
		line := fmt.Sprintf("%s  %s", StyleName.Render(mem.Name), StyleSubtitle.Render(mem.Phone))
		b.WriteString(m.row(i, line))
	}
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderSermons() string {
	if len(m.sermons) == 0 {
		return StyleBox.Render("No sermons yet.")
	}
	var b strings.Builder
	for i, s := range m.sermons {
		line := fmt.Sprintf("%s  %s  [%s]", s.Date.Local().Format("2006-01-02"), s.Title, s.Status)
		b.WriteString(m.row(i, line))
	}
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderVisits() string {
	if len(m.visits) == 0 {
		return StyleBox.Render("No visits planned.")
	}
	var b strings.Builder
	for i, v := range m.visits {
		name := v.MemberName
		if v.Orphaned {
			name += " (removed)"
		}
		line := fmt.Sprintf("%s  %s  %s  [%s]",
			v.Date.Local().Format("2006-01-02 15:04"), name, v.Purpose, v.Status)
		if v.Status == model.VisitCompleted {
			line = StyleDone.Render(line)
		}
		b.WriteString(m.row(i, line))
	}
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderEvents() string {
	if len(m.events) == 0 {
		return StyleBox.Render("No events scheduled.")
	}
	var b strings.Builder
	for i, e := range m.events {
		line := fmt.Sprintf("%s %s  %s", e.Date.Local().Format("2006-01-02"), e.Time, e.Title)
		if e.Location != "" {
			line += StyleSubtitle.Render("  @ " + e.Location)
		}
		b.WriteString(m.row(i, line))
	}
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderCalls() string {
	if len(m.calls) == 0 {
		return StyleBox.Render("No members on the call sheet.")
	}
	var b strings.Builder
	for i, entry := range m.calls {
		status := string(entry.Call.Status)
		switch entry.Call.Status {
		case model.CallUrgent:
			status = StyleUrgent.Render(status)
		case model.CallDone:
			status = StyleDone.Render(status)
		}
		line := fmt.Sprintf("%-10s %s  %s", status, entry.Member.Name,
			StyleSubtitle.Render(entry.Member.Phone))
		b.WriteString(m.row(i, line))
	}
	done, total := m.overview.CallsDone, m.overview.CallsTotal
	fmt.Fprintf(&b, "\n%d of %d done\n", done, total)
	return StyleBox.Render(b.String())
}

func (m *DashboardModel) renderNotifications() string {
	if len(m.notifications) == 0 {
		return StyleBox.Render("No notifications.")
	}
	var b strings.Builder
	for i, n := range m.notifications {
		line := fmt.Sprintf("%s  %s", n.Date.Local().Format("Jan 2 15:04"), n.Title)
		if !n.Read {
			line = StyleUnread.Render(line)
		}
		b.WriteString(m.row(i, line))
	}
	return StyleBox.Render(b.String())
}

// row renders a list line, highlighting the cursor position.
func (m *DashboardModel) row(i int, line string) string {
	if i == m.cursor {
		return StyleSelected.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m *DashboardModel) renderHelp() string {
	help := "tab/1-7 switch · j/k move · enter open · q quit"
	if m.tab == model.TabCalling {
		help = "u urgent · t todo · d done · " + help
	}
	return StyleHelp.Render(help)
}

func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard TUI.
func Run(cfg Config) error {
	p := tea.NewProgram(NewDashboardModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
