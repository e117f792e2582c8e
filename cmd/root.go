// Package cmd provides the CLI commands for Shepherd.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagConfig string
	flagData   string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shepherd",
	Short: "A pastoral ministry organizer for the command line",
	Long: `Shepherd keeps a single pastor's week in order: the member register,
sermon planning, home visits, the parish calendar, and the weekly call sheet.

Examples:
  shepherd member add "Mary Smith" --phone 555-0100
  shepherd visit add "Mary Smith" --purpose "Follow-up" --date "tomorrow 15:00"
  shepherd calls
  shepherd calls set "Mary Smith" done
  shepherd watch`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.DataDir = flagData
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the weekly overview
		return runOverview(cmd, args)
	},
}

// runOverview shows the dashboard counters.
func runOverview(cmd *cobra.Command, args []string) error {
	overview := ctx.App.Overview()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(overview)
	}

	cli := ctx.CLIFormatter()
	cli.PrintOverview(overview)

	items := ctx.App.UpcomingItems(5)
	if len(items) > 0 {
		cli.Println()
		cli.Muted("Upcoming:")
		for _, it := range items {
			detail := it.Detail
			if detail != "" {
				detail = "  " + detail
			}
			cli.Printf("  %s  %s%s\n", output.FormatTimeShort(it.Date), it.Title, detail)
		}
	}
	return nil
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.Formatter.JSON(map[string]string{
			"error":      err.Error(),
			"suggestion": runtime.GetSuggestion(err),
		})
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file path (default: XDG config home)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "",
		"Database directory (default: XDG data home)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("shepherd %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
