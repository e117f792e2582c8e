package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/reminder"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"remind"},
	Short:   "Run the reminder engine in the foreground",
	Long: `Run the reminder engine until interrupted. Every check interval
(60s by default) it looks for events starting within half an hour, pending
visits within the hour on the current day, draft sermons scheduled for
tomorrow, and urgent calls on calling days. Each reminder is filed as an
in-app notification and mirrored to enabled webhooks.

Example:
  shepherd watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	engine := reminder.New(reminder.Options{
		App:      ctx.App,
		Notifier: ctx.Notifier,
		Config:   ctx.Config.Reminders,
	})

	if err := engine.Start(); err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	cli.Printf("Watching (check interval %s). Press Ctrl+C to stop.\n",
		ctx.Config.Reminders.CheckIntervalDuration())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	engine.Stop()
	cli.Println("Stopped.")
	return nil
}
