// Package tui provides the terminal user interface for Shepherd.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorActive  = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleTabActive is used for the selected tab label.
	StyleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	// StyleTabInactive is used for unselected tab labels.
	StyleTabInactive = lipgloss.NewStyle().
				Foreground(ColorMuted)

	// StyleName is used for member names.
	StyleName = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleUrgent is used for urgent call entries.
	StyleUrgent = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// StyleDone is used for completed entries.
	StyleDone = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleUnread is used for unread notifications.
	StyleUnread = lipgloss.NewStyle().
			Bold(true)

	// StyleSelected is used for the cursor row in a list.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleBox frames a dashboard section.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// Badge renders the unread notification badge label.
func Badge(label string) string {
	if label == "" {
		return ""
	}
	return StyleError.Render("(" + label + ")")
}
