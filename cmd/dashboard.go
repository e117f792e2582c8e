package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard with tabs for members, sermons, visits,
the calendar, the call sheet, and notifications.

Keys: tab or 1-7 switch tabs, j/k move, enter opens a notification's target,
u/t/d set the call status on the calling tab, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Config{App: ctx.App})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
