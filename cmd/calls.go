package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// callsCmd represents the calls command.
var callsCmd = &cobra.Command{
	Use:     "calls",
	Aliases: []string{"call", "c"},
	Short:   "Work the weekly call sheet",
	Long: `Show the call sheet for the current ISO week, urgent entries first.

The sheet regenerates every Monday: every member comes back as todo. Mark
entries urgent to get a reminder on calling days (Tuesday through Saturday).

Examples:
  shepherd calls
  shepherd calls set "Mary Smith" urgent
  shepherd calls set "Mary Smith" done`,
	RunE: runCallsList,
}

var callsSetCmd = &cobra.Command{
	Use:   "set MEMBER STATUS",
	Short: "Set a call entry to todo, urgent or done",
	Args:  cobra.ExactArgs(2),
	RunE:  runCallsSet,
}

func init() {
	callsCmd.AddCommand(callsSetCmd)
	rootCmd.AddCommand(callsCmd)
}

func runCallsList(cmd *cobra.Command, args []string) error {
	entries := ctx.App.CallSheet()
	done, total := ctx.App.CallSummary()

	if ctx.IsJSON() {
		type entryOut struct {
			MemberID string `json:"memberId"`
			Name     string `json:"name"`
			Phone    string `json:"phone,omitempty"`
			Status   string `json:"status"`
		}
		out := struct {
			Week    string     `json:"week"`
			Done    int        `json:"done"`
			Total   int        `json:"total"`
			Entries []entryOut `json:"entries"`
		}{
			Week:    ctx.App.WeekIdentifier(),
			Done:    done,
			Total:   total,
			Entries: make([]entryOut, 0, len(entries)),
		}
		for _, e := range entries {
			out.Entries = append(out.Entries, entryOut{
				MemberID: e.Member.ID,
				Name:     e.Member.Name,
				Phone:    e.Member.Phone,
				Status:   string(e.Call.Status),
			})
		}
		return ctx.Formatter.JSON(out)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Call sheet " + ctx.App.WeekIdentifier())
	cli.PrintCallSheet(entries, done, total)
	return nil
}

func runCallsSet(cmd *cobra.Command, args []string) error {
	m, err := resolveMember(args[0])
	if err != nil {
		return err
	}

	status := model.CallStatus(args[1])
	changed, err := ctx.App.UpdateCallStatus(m.ID, status)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"memberId": m.ID,
			"status":   string(status),
			"changed":  changed,
		})
	}

	cli := ctx.CLIFormatter()
	if !changed {
		cli.Muted(m.Name + " was already " + string(status))
		return nil
	}
	cli.Success(m.Name + " marked " + string(status))
	return nil
}
