package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/parser"
)

// Visit command flags.
var (
	visitFlagPurpose string
	visitFlagDate    string
	visitFlagNotes   string
	visitFlagMember  string
	visitFlagAll     bool
)

// visitCmd represents the visit command.
var visitCmd = &cobra.Command{
	Use:     "visit [ID]",
	Aliases: []string{"visits", "v"},
	Short:   "Plan and track home visits",
	Long: `List visits, soonest first, or manage the visiting plan.

A pending visit on the current day raises a reminder an hour ahead. Visits
keep a snapshot of the member's name and address, so history stays readable
even after the member is removed.

Examples:
  shepherd visit
  shepherd visit add "Mary Smith" --purpose "Follow-up" --date "tomorrow 15:00"
  shepherd visit done a1b2c3
  shepherd visit remove a1b2c3`,
	RunE: runVisitList,
}

var visitAddCmd = &cobra.Command{
	Use:   "add MEMBER",
	Short: "Plan a visit to a member",
	Args:  cobra.ExactArgs(1),
	RunE:  runVisitAdd,
}

var visitEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a visit",
	Args:  cobra.ExactArgs(1),
	RunE:  runVisitEdit,
}

var visitDoneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"complete"},
	Short:   "Mark a visit completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runVisitDone,
}

var visitRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a visit",
	Args:    cobra.ExactArgs(1),
	RunE:    runVisitRemove,
}

func init() {
	for _, c := range []*cobra.Command{visitAddCmd, visitEditCmd} {
		c.Flags().StringVar(&visitFlagPurpose, "purpose", "", "Reason for the visit")
		c.Flags().StringVar(&visitFlagDate, "date", "", "When (e.g. 'tomorrow 15:00')")
		c.Flags().StringVar(&visitFlagNotes, "notes", "", "Free-form notes")
	}
	visitEditCmd.Flags().StringVar(&visitFlagMember, "member", "", "Re-target to another member")
	visitCmd.Flags().BoolVarP(&visitFlagAll, "all", "a", false, "Include completed visits")

	visitCmd.AddCommand(visitAddCmd)
	visitCmd.AddCommand(visitEditCmd)
	visitCmd.AddCommand(visitDoneCmd)
	visitCmd.AddCommand(visitRemoveCmd)
	rootCmd.AddCommand(visitCmd)
}

func runVisitList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		id, err := resolveVisitID(args[0])
		if err != nil {
			return err
		}
		v, err := ctx.App.Visit(id)
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(v)
		}
		cli := ctx.CLIFormatter()
		cli.Title("Visit to " + v.MemberName)
		cli.Printf("  Purpose: %s\n", v.Purpose)
		cli.Printf("  When: %s\n", output.FormatTimeShort(v.Date))
		cli.Printf("  Status: %s\n", cli.VisitStatus(v.Status))
		if v.Address != "" {
			cli.Printf("  Address: %s\n", v.Address)
		}
		if v.Orphaned {
			cli.Warning("The member has since been removed from the register")
		}
		if v.Notes != "" {
			cli.Printf("  Notes: %s\n", v.Notes)
		}
		return nil
	}

	visits := ctx.App.Visits()
	if !visitFlagAll {
		pending := visits[:0]
		for _, v := range visits {
			if v.IsPending() {
				pending = append(pending, v)
			}
		}
		visits = pending
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(visits)
	}

	cli := ctx.CLIFormatter()
	if len(visits) == 0 {
		cli.Muted("No visits planned.")
		return nil
	}

	rows := make([]output.TableRow, 0, len(visits))
	for _, v := range visits {
		name := v.MemberName
		if v.Orphaned {
			name += " (removed)"
		}
		rows = append(rows, output.TableRow{Columns: []string{
			shortID(v.ID), output.FormatTimeShort(v.Date), name, v.Purpose, cli.VisitStatus(v.Status),
		}})
	}
	cli.PrintTable([]string{"ID", "WHEN", "MEMBER", "PURPOSE", "STATUS"}, rows)
	return nil
}

func runVisitAdd(cmd *cobra.Command, args []string) error {
	m, err := resolveMember(args[0])
	if err != nil {
		return err
	}

	date, err := parser.ParseTimestamp(visitFlagDate, time.Now())
	if err != nil {
		return err
	}

	v, err := ctx.App.AddVisit(app.VisitParams{
		MemberID: m.ID,
		Purpose:  visitFlagPurpose,
		Date:     date,
		Notes:    visitFlagNotes,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(v)
	}
	ctx.CLIFormatter().Success("Planned visit to " + v.MemberName + " on " + output.FormatTimeShort(v.Date))
	return nil
}

func runVisitEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveVisitID(args[0])
	if err != nil {
		return err
	}
	v, err := ctx.App.Visit(id)
	if err != nil {
		return err
	}

	p := app.VisitParams{
		MemberID: v.MemberID,
		Purpose:  v.Purpose,
		Date:     v.Date,
		Status:   v.Status,
		Notes:    v.Notes,
	}
	if visitFlagMember != "" {
		m, err := resolveMember(visitFlagMember)
		if err != nil {
			return err
		}
		p.MemberID = m.ID
	}
	if visitFlagPurpose != "" {
		p.Purpose = visitFlagPurpose
	}
	if visitFlagDate != "" {
		date, err := parser.ParseTimestamp(visitFlagDate, time.Now())
		if err != nil {
			return err
		}
		p.Date = date
	}
	if visitFlagNotes != "" {
		p.Notes = visitFlagNotes
	}

	updated, err := ctx.App.UpdateVisit(v.ID, p)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(updated)
	}
	ctx.CLIFormatter().Success("Updated visit to " + updated.MemberName)
	return nil
}

func runVisitDone(cmd *cobra.Command, args []string) error {
	id, err := resolveVisitID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.App.CompleteVisit(id); err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"completed": id})
	}
	ctx.CLIFormatter().Success("Visit completed")
	return nil
}

func runVisitRemove(cmd *cobra.Command, args []string) error {
	id, err := resolveVisitID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.App.DeleteVisit(id); err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed visit")
	return nil
}
