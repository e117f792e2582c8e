package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/parser"
)

// Event command flags.
var (
	eventFlagDate     string
	eventFlagLocation string
	eventFlagDesc     string
	eventFlagTitle    string
	eventFlagToday    bool
)

// eventCmd represents the event command.
var eventCmd = &cobra.Command{
	Use:     "event [ID]",
	Aliases: []string{"events", "e", "calendar"},
	Short:   "Manage the parish calendar",
	Long: `List calendar events, soonest first, or manage the calendar.

An event raises a reminder half an hour before it starts.

Examples:
  shepherd event
  shepherd event --today
  shepherd event add "Bible study" --date "thursday 19:00" --location "Parish hall"
  shepherd event remove a1b2c3`,
	RunE: runEventList,
}

var eventAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Put an event on the calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventAdd,
}

var eventEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventEdit,
}

var eventRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove an event",
	Args:    cobra.ExactArgs(1),
	RunE:    runEventRemove,
}

func init() {
	for _, c := range []*cobra.Command{eventAddCmd, eventEditCmd} {
		c.Flags().StringVar(&eventFlagDate, "date", "", "When (e.g. 'thursday 19:00')")
		c.Flags().StringVar(&eventFlagLocation, "location", "", "Where")
		c.Flags().StringVar(&eventFlagDesc, "description", "", "Details")
	}
	eventEditCmd.Flags().StringVar(&eventFlagTitle, "title", "", "Update the title")
	eventCmd.Flags().BoolVar(&eventFlagToday, "today", false, "Only today's events")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventEditCmd)
	eventCmd.AddCommand(eventRemoveCmd)
	rootCmd.AddCommand(eventCmd)
}

func runEventList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		id, err := resolveEventID(args[0])
		if err != nil {
			return err
		}
		e, err := ctx.App.Event(id)
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(e)
		}
		cli := ctx.CLIFormatter()
		cli.Title(e.Title)
		cli.Printf("  When: %s %s\n", output.FormatDate(e.Date), e.Time)
		if e.Location != "" {
			cli.Printf("  Where: %s\n", e.Location)
		}
		if e.Description != "" {
			cli.Printf("  Details: %s\n", e.Description)
		}
		return nil
	}

	var events = ctx.App.Events()
	if eventFlagToday {
		events = ctx.App.TodayEvents()
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(events)
	}

	cli := ctx.CLIFormatter()
	if len(events) == 0 {
		cli.Muted("No events scheduled.")
		return nil
	}

	rows := make([]output.TableRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, output.TableRow{Columns: []string{
			shortID(e.ID), output.FormatDate(e.Date), e.Time, e.Title, e.Location,
		}})
	}
	cli.PrintTable([]string{"ID", "DATE", "TIME", "TITLE", "LOCATION"}, rows)
	return nil
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseTimestamp(eventFlagDate, time.Now())
	if err != nil {
		return err
	}

	e, err := ctx.App.AddEvent(app.EventParams{
		Title:       args[0],
		Date:        date,
		Location:    eventFlagLocation,
		Description: eventFlagDesc,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(e)
	}
	ctx.CLIFormatter().Success("Added " + e.Title + " on " + output.FormatDate(e.Date) + " at " + e.Time)
	return nil
}

func runEventEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveEventID(args[0])
	if err != nil {
		return err
	}
	e, err := ctx.App.Event(id)
	if err != nil {
		return err
	}

	p := app.EventParams{
		Title:       e.Title,
		Date:        e.Date,
		Location:    e.Location,
		Description: e.Description,
	}
	if eventFlagTitle != "" {
		p.Title = eventFlagTitle
	}
	if eventFlagDate != "" {
		date, err := parser.ParseTimestamp(eventFlagDate, time.Now())
		if err != nil {
			return err
		}
		p.Date = date
	}
	if eventFlagLocation != "" {
		p.Location = eventFlagLocation
	}
	if eventFlagDesc != "" {
		p.Description = eventFlagDesc
	}

	updated, err := ctx.App.UpdateEvent(e.ID, p)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(updated)
	}
	ctx.CLIFormatter().Success("Updated " + updated.Title)
	return nil
}

func runEventRemove(cmd *cobra.Command, args []string) error {
	id, err := resolveEventID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.App.DeleteEvent(id); err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed event")
	return nil
}
