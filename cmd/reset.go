package cmd

import (
	"github.com/spf13/cobra"
)

var resetFlagForce bool

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all organizer data",
	Long: `Delete every member, sermon, visit, event, activity, notification,
and the current call sheet. Webhook configuration is kept.

This cannot be undone.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFlagForce, "force", false, "Skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetFlagForce {
		confirmed, err := promptConfirmation("Delete ALL organizer data? This cannot be undone. (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.CLIFormatter().Muted("Cancelled")
			return nil
		}
	}

	if err := ctx.App.ClearAllData(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]bool{"reset": true})
	}
	ctx.CLIFormatter().Success("All data deleted")
	return nil
}
