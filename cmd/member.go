package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/app"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/parser"
)

// Member command flags.
var (
	memberFlagEmail   string
	memberFlagPhone   string
	memberFlagAddress string
	memberFlagNotes   string
	memberFlagBirth   string
	memberRemoveForce bool
)

// memberCmd represents the member command.
var memberCmd = &cobra.Command{
	Use:     "member [ID_OR_NAME]",
	Aliases: []string{"members", "m"},
	Short:   "Manage the member register",
	Long: `List members, show one member, or manage the register.

Adding a member also puts them on the current week's call sheet. Removing a
member takes them off the sheet; their past visits are kept with a snapshot
of the name and address.

Examples:
  shepherd member
  shepherd member add "Mary Smith" --phone 555-0100 --birth 1957-03-04
  shepherd member edit "Mary Smith" --address "12 Chapel Lane"
  shepherd member remove "Mary Smith"`,
	RunE: runMemberList,
}

var memberAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a member to the register",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemberAdd,
}

var memberEditCmd = &cobra.Command{
	Use:   "edit ID_OR_NAME",
	Short: "Edit a member",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemberEdit,
}

var memberRemoveCmd = &cobra.Command{
	Use:     "remove ID_OR_NAME",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a member from the register",
	Args:    cobra.ExactArgs(1),
	RunE:    runMemberRemove,
}

func init() {
	for _, c := range []*cobra.Command{memberAddCmd, memberEditCmd} {
		c.Flags().StringVar(&memberFlagEmail, "email", "", "Email address")
		c.Flags().StringVar(&memberFlagPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&memberFlagAddress, "address", "", "Home address")
		c.Flags().StringVar(&memberFlagNotes, "notes", "", "Free-form notes")
		c.Flags().StringVar(&memberFlagBirth, "birth", "", "Birth date (e.g. 1957-03-04)")
	}
	memberRemoveCmd.Flags().BoolVar(&memberRemoveForce, "force", false, "Skip confirmation")

	memberCmd.AddCommand(memberAddCmd)
	memberCmd.AddCommand(memberEditCmd)
	memberCmd.AddCommand(memberRemoveCmd)
	rootCmd.AddCommand(memberCmd)
}

// resolveMember looks a member up by id first, then by name.
func resolveMember(arg string) (*model.Member, error) {
	if m, err := ctx.App.Member(arg); err == nil {
		return m, nil
	}
	return ctx.App.MemberByName(arg)
}

func memberParamsFromFlags(existing *model.Member) (app.MemberParams, error) {
	p := app.MemberParams{
		Email:   memberFlagEmail,
		Phone:   memberFlagPhone,
		Address: memberFlagAddress,
		Notes:   memberFlagNotes,
	}
	if existing != nil {
		p.Name = existing.Name
		if memberFlagEmail == "" {
			p.Email = existing.Email
		}
		if memberFlagPhone == "" {
			p.Phone = existing.Phone
		}
		if memberFlagAddress == "" {
			p.Address = existing.Address
		}
		if memberFlagNotes == "" {
			p.Notes = existing.Notes
		}
		p.BirthDate = existing.BirthDate
	}
	if memberFlagBirth != "" {
		birth, err := parser.ParseDate(memberFlagBirth, time.Now())
		if err != nil {
			return p, err
		}
		p.BirthDate = &birth
	}
	return p, nil
}

func runMemberList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showMember(args[0])
	}

	members := ctx.App.Members()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(members)
	}

	cli := ctx.CLIFormatter()
	if len(members) == 0 {
		cli.Muted("No members yet.")
		cli.Muted("Use 'shepherd member add NAME' to add one.")
		return nil
	}

	rows := make([]output.TableRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, output.TableRow{Columns: []string{
			m.Name, m.Phone, m.Email, output.FormatDate(m.JoinDate),
		}})
	}
	cli.PrintTable([]string{"NAME", "PHONE", "EMAIL", "JOINED"}, rows)
	return nil
}

func showMember(arg string) error {
	m, err := resolveMember(arg)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(m)
	}

	cli := ctx.CLIFormatter()
	cli.Title(m.Name)
	if m.Phone != "" {
		cli.Printf("  Phone: %s\n", m.Phone)
	}
	if m.Email != "" {
		cli.Printf("  Email: %s\n", m.Email)
	}
	if m.Address != "" {
		cli.Printf("  Address: %s\n", m.Address)
	}
	cli.Printf("  Joined: %s\n", output.FormatDate(m.JoinDate))
	if age := m.Age(time.Now()); age >= 0 {
		cli.Printf("  Age: %d\n", age)
	}
	if m.Notes != "" {
		cli.Printf("  Notes: %s\n", m.Notes)
	}
	return nil
}

func runMemberAdd(cmd *cobra.Command, args []string) error {
	p, err := memberParamsFromFlags(nil)
	if err != nil {
		return err
	}
	p.Name = args[0]

	m, err := ctx.App.AddMember(p)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(m)
	}
	ctx.CLIFormatter().Success("Added " + m.Name + " and put them on this week's call sheet")
	return nil
}

func runMemberEdit(cmd *cobra.Command, args []string) error {
	m, err := resolveMember(args[0])
	if err != nil {
		return err
	}

	p, err := memberParamsFromFlags(m)
	if err != nil {
		return err
	}

	updated, err := ctx.App.UpdateMember(m.ID, p)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(updated)
	}
	ctx.CLIFormatter().Success("Updated " + updated.Name)
	return nil
}

func runMemberRemove(cmd *cobra.Command, args []string) error {
	m, err := resolveMember(args[0])
	if err != nil {
		return err
	}

	if !memberRemoveForce {
		confirmed, err := promptConfirmation("Remove " + m.Name + " from the register? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.CLIFormatter().Muted("Cancelled")
			return nil
		}
	}

	if err := ctx.App.DeleteMember(m.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": m.ID})
	}
	ctx.CLIFormatter().Success("Removed " + m.Name)
	return nil
}
