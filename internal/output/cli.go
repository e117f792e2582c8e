package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleName = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Toast surfaces a short message at the matching severity.
func (c *CLIFormatter) Toast(title, message string, severity app.Severity) {
	text := title
	if message != "" {
		text = title + ": " + message
	}
	switch severity {
	case app.SeveritySuccess:
		c.Success(text)
	case app.SeverityWarning:
		c.Warning(text)
	case app.SeverityError:
		c.Error(text)
	default:
		c.Println(text)
	}
}

// Name formats a member name.
func (c *CLIFormatter) Name(name string) string {
	if c.IsColorEnabled() {
		return styleName.Render(name)
	}
	return name
}

// CallStatus renders a call status with its color.
func (c *CLIFormatter) CallStatus(s model.CallStatus) string {
	if !c.IsColorEnabled() {
		return string(s)
	}
	switch s {
	case model.CallUrgent:
		return styleError.Render(string(s))
	case model.CallDone:
		return styleSuccess.Render(string(s))
	default:
		return styleMuted.Render(string(s))
	}
}

// SermonStatus renders a sermon status with its color.
func (c *CLIFormatter) SermonStatus(s model.SermonStatus) string {
	if !c.IsColorEnabled() {
		return string(s)
	}
	switch s {
	case model.SermonPreached:
		return styleSuccess.Render(string(s))
	case model.SermonReady:
		return styleWarning.Render(string(s))
	default:
		return styleMuted.Render(string(s))
	}
}

// VisitStatus renders a visit status with its color.
func (c *CLIFormatter) VisitStatus(s model.VisitStatus) string {
	if !c.IsColorEnabled() {
		return string(s)
	}
	if s == model.VisitCompleted {
		return styleSuccess.Render(string(s))
	}
	return styleWarning.Render(string(s))
}

// PrintOverview prints the dashboard counters.
func (c *CLIFormatter) PrintOverview(o app.Overview) {
	c.Title("Shepherd " + o.WeekIdentifier)
	c.Printf("  Members: %d\n", o.MemberCount)
	c.Printf("  Sermons: %d\n", o.SermonCount)
	c.Printf("  Events today: %d\n", o.TodayEvents)
	c.Printf("  Visits this week: %d\n", o.VisitsThisWeek)
	c.Printf("  Calls: %d / %d done\n", o.CallsDone, o.CallsTotal)
	if o.Unread > 0 {
		c.Warning(fmt.Sprintf("%d unread notifications", o.Unread))
	}
}

// PrintCallSheet prints the weekly call sheet.
func (c *CLIFormatter) PrintCallSheet(entries []app.CallEntry, done, total int) {
	if len(entries) == 0 {
		c.Muted("No members on the call sheet.")
		c.Muted("Use 'shepherd member add' to add members.")
		return
	}

	rows := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TableRow{Columns: []string{
			e.Member.Name,
			c.CallStatus(e.Call.Status),
			e.Member.Phone,
		}})
	}
	c.PrintTable([]string{"MEMBER", "STATUS", "PHONE"}, rows)
	c.Printf("\n%d of %d calls done\n", done, total)
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

const minColumnWidth = 8

// terminalWidth reports the width of the attached terminal, or 0 when stdout
// is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// truncateCell shortens a cell to fit its column. Widths are measured with
// lipgloss so styled cells count visible characters, not escape codes.
func truncateCell(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	// Shrink the widest column until the table fits the terminal.
	if limit := terminalWidth(); limit > 0 {
		for tableWidth(widths) > limit {
			i := widestColumn(widths)
			if widths[i] <= minColumnWidth {
				break
			}
			widths[i]--
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(padCell(h, widths[i]) + "  ")
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(padCell(truncateCell(col, widths[i]), widths[i]) + "  ")
			}
		}
		c.Println(rowLine.String())
	}
}

// padCell pads a cell to the column width, measuring visible characters so
// styled cells line up with plain ones.
func padCell(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total
}

func widestColumn(widths []int) int {
	widest := 0
	for i, w := range widths {
		if w > widths[widest] {
			widest = i
		}
	}
	return widest
}
