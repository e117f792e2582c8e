package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/parser"
)

// Sermon command flags.
var (
	sermonFlagScripture string
	sermonFlagDate      string
	sermonFlagDuration  int
	sermonFlagStatus    string
	sermonFlagNotes     string
	sermonFlagTitle     string
)

// sermonCmd represents the sermon command.
var sermonCmd = &cobra.Command{
	Use:     "sermon [ID]",
	Aliases: []string{"sermons", "s"},
	Short:   "Plan and track sermons",
	Long: `List sermons, newest first, or manage the sermon plan.

A sermon starts as a draft. Drafts scheduled for tomorrow raise a reminder.

Examples:
  shepherd sermon
  shepherd sermon add "The Good Shepherd" --scripture "John 10:11-18" --date "next sunday"
  shepherd sermon edit a1b2c3 --status ready
  shepherd sermon remove a1b2c3`,
	RunE: runSermonList,
}

var sermonAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a sermon to the plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runSermonAdd,
}

var sermonEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a sermon",
	Args:  cobra.ExactArgs(1),
	RunE:  runSermonEdit,
}

var sermonRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a sermon",
	Args:    cobra.ExactArgs(1),
	RunE:    runSermonRemove,
}

func init() {
	for _, c := range []*cobra.Command{sermonAddCmd, sermonEditCmd} {
		c.Flags().StringVar(&sermonFlagScripture, "scripture", "", "Scripture reference")
		c.Flags().StringVar(&sermonFlagDate, "date", "", "Scheduled date (e.g. 'next sunday')")
		c.Flags().IntVar(&sermonFlagDuration, "duration", 0, "Expected length in minutes")
		c.Flags().StringVar(&sermonFlagNotes, "notes", "", "Preparation notes")
	}
	sermonEditCmd.Flags().StringVar(&sermonFlagTitle, "title", "", "Update the title")
	sermonEditCmd.Flags().StringVar(&sermonFlagStatus, "status", "", "Status: draft, ready, preached")

	sermonCmd.AddCommand(sermonAddCmd)
	sermonCmd.AddCommand(sermonEditCmd)
	sermonCmd.AddCommand(sermonRemoveCmd)
	rootCmd.AddCommand(sermonCmd)
}

func runSermonList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		id, err := resolveSermonID(args[0])
		if err != nil {
			return err
		}
		s, err := ctx.App.Sermon(id)
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(s)
		}
		cli := ctx.CLIFormatter()
		cli.Title(s.Title)
		cli.Printf("  Scripture: %s\n", s.Scripture)
		cli.Printf("  Date: %s\n", output.FormatDate(s.Date))
		cli.Printf("  Status: %s\n", cli.SermonStatus(s.Status))
		if s.Duration > 0 {
			cli.Printf("  Duration: %d min\n", s.Duration)
		}
		if s.Notes != "" {
			cli.Printf("  Notes: %s\n", s.Notes)
		}
		return nil
	}

	sermons := ctx.App.Sermons()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(sermons)
	}

	cli := ctx.CLIFormatter()
	if len(sermons) == 0 {
		cli.Muted("No sermons yet.")
		return nil
	}

	rows := make([]output.TableRow, 0, len(sermons))
	for _, s := range sermons {
		rows = append(rows, output.TableRow{Columns: []string{
			shortID(s.ID), output.FormatDate(s.Date), s.Title, s.Scripture, cli.SermonStatus(s.Status),
		}})
	}
	cli.PrintTable([]string{"ID", "DATE", "TITLE", "SCRIPTURE", "STATUS"}, rows)
	return nil
}

func runSermonAdd(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseTimestamp(sermonFlagDate, time.Now())
	if err != nil {
		return err
	}

	s, err := ctx.App.AddSermon(app.SermonParams{
		Title:     args[0],
		Scripture: sermonFlagScripture,
		Date:      date,
		Duration:  sermonFlagDuration,
		Notes:     sermonFlagNotes,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(s)
	}
	ctx.CLIFormatter().Success("Added sermon " + s.Title + " for " + output.FormatDate(s.Date))
	return nil
}

func runSermonEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveSermonID(args[0])
	if err != nil {
		return err
	}
	s, err := ctx.App.Sermon(id)
	if err != nil {
		return err
	}

	p := app.SermonParams{
		Title:     s.Title,
		Scripture: s.Scripture,
		Date:      s.Date,
		Duration:  s.Duration,
		Status:    s.Status,
		Notes:     s.Notes,
	}
	if sermonFlagTitle != "" {
		p.Title = sermonFlagTitle
	}
	if sermonFlagScripture != "" {
		p.Scripture = sermonFlagScripture
	}
	if sermonFlagDate != "" {
		date, err := parser.ParseTimestamp(sermonFlagDate, time.Now())
		if err != nil {
			return err
		}
		p.Date = date
	}
	if sermonFlagDuration != 0 {
		p.Duration = sermonFlagDuration
	}
	if sermonFlagStatus != "" {
		p.Status = model.SermonStatus(sermonFlagStatus)
	}
	if sermonFlagNotes != "" {
		p.Notes = sermonFlagNotes
	}

	updated, err := ctx.App.UpdateSermon(s.ID, p)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(updated)
	}
	ctx.CLIFormatter().Success("Updated sermon " + updated.Title)
	return nil
}

func runSermonRemove(cmd *cobra.Command, args []string) error {
	id, err := resolveSermonID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.App.DeleteSermon(id); err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed sermon")
	return nil
}

// shortID abbreviates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
