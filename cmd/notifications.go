package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/output"
)

// Notification command flags.
var (
	notificationsFlagUnread bool
	notificationsReadAll    bool
)

// notificationsCmd represents the notifications command.
var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notification", "n", "inbox"},
	Short:   "Review in-app notifications",
	Long: `List notifications, newest first. The reminder engine files one
notification per day for a given title and message.

Examples:
  shepherd notifications
  shepherd notifications --unread
  shepherd notifications read 17107
  shepherd notifications read --all
  shepherd notifications clear`,
	RunE: runNotificationsList,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [ID]",
	Short: "Mark a notification (or all of them) as read",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNotificationsRead,
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	RunE:  runNotificationsClear,
}

func init() {
	notificationsCmd.Flags().BoolVarP(&notificationsFlagUnread, "unread", "u", false, "Only unread")
	notificationsReadCmd.Flags().BoolVar(&notificationsReadAll, "all", false, "Mark every notification read")

	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func runNotificationsList(cmd *cobra.Command, args []string) error {
	all := ctx.App.Notifications()
	if notificationsFlagUnread {
		unread := all[:0]
		for _, n := range all {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		all = unread
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(all)
	}

	cli := ctx.CLIFormatter()
	if len(all) == 0 {
		cli.Muted("No notifications.")
		return nil
	}

	if badge := ctx.App.BadgeLabel(); badge != "" {
		cli.Warning(badge + " unread")
	}
	for _, n := range all {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		cli.Printf("%s %s  %s  %s\n", marker, shortID(n.ID),
			output.FormatTimeShort(n.Date), n.Title)
		if n.Message != "" {
			cli.Muted("    " + n.Message)
		}
	}
	return nil
}

func runNotificationsRead(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if notificationsReadAll {
		count := 0
		for _, n := range ctx.App.Notifications() {
			if ctx.App.MarkNotificationRead(n.ID) {
				count++
			}
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]int{"marked": count})
		}
		cli.Success("All notifications read")
		return nil
	}

	if len(args) == 0 {
		return errors.NewUserError("Missing notification id", "Pass an id or use --all")
	}

	// Ids are timestamps; accept a prefix
	for _, n := range ctx.App.Notifications() {
		if strings.HasPrefix(n.ID, args[0]) {
			ctx.App.MarkNotificationRead(n.ID)
			if ctx.IsJSON() {
				return ctx.Formatter.JSON(map[string]string{"read": n.ID})
			}
			cli.Success("Marked read")
			return nil
		}
	}
	return errors.NewUserError("Notification not found", "Check the id with 'shepherd notifications'")
}

func runNotificationsClear(cmd *cobra.Command, args []string) error {
	ctx.App.ClearAllNotifications()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]bool{"cleared": true})
	}
	ctx.CLIFormatter().Success("Notifications cleared")
	return nil
}
