package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/output"
	"github.com/shepherd-cli/shepherd/internal/storage"
)

// Webhook command flags.
var (
	webhookAddFlagType     string
	webhookAddFlagTemplate string
	webhookRemoveFlagForce bool
)

// webhookCmd represents the webhook command.
var webhookCmd = &cobra.Command{
	Use:     "webhook [command]",
	Aliases: []string{"w", "wh", "hook"},
	Short:   "Configure notification webhooks",
	Long: `Configure webhooks for Discord, Slack, or custom endpoints.

Enabled webhooks mirror every reminder: upcoming events, same-day visits,
tomorrow's sermon drafts, and the urgent-calls digest.

Examples:
  shepherd webhook add study-group https://discord.com/api/webhooks/...
  shepherd webhook list
  shepherd webhook test study-group
  shepherd webhook disable study-group
  shepherd webhook remove study-group`,
	RunE: runWebhookList,
}

var webhookAddCmd = &cobra.Command{
	Use:   "add NAME URL",
	Short: "Add a new webhook",
	Long: `Add a webhook for receiving reminder notifications.

The webhook type is auto-detected from the URL:
  - Discord: discord.com/api/webhooks/...
  - Slack:   hooks.slack.com/services/...
  - Generic: Any other URL`,
	Args: cobra.ExactArgs(2),
	RunE: runWebhookAdd,
}

var webhookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all webhooks",
	RunE:  runWebhookList,
}

var webhookTestCmd = &cobra.Command{
	Use:   "test NAME",
	Short: "Test a webhook by sending a test notification",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhookTest,
}

var webhookRemoveCmd = &cobra.Command{
	Use:     "remove NAME",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a webhook",
	Args:    cobra.ExactArgs(1),
	RunE:    runWebhookRemove,
}

var webhookEnableCmd = &cobra.Command{
	Use:   "enable NAME",
	Short: "Enable a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhookEnable,
}

var webhookDisableCmd = &cobra.Command{
	Use:   "disable NAME",
	Short: "Disable a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhookDisable,
}

func init() {
	webhookAddCmd.Flags().StringVarP(&webhookAddFlagType, "type", "t", "",
		"Webhook type: discord, slack, generic (auto-detected from URL if not specified)")
	webhookAddCmd.Flags().StringVar(&webhookAddFlagTemplate, "template", "",
		"Custom payload template for generic webhooks")

	webhookRemoveCmd.Flags().BoolVar(&webhookRemoveFlagForce, "force", false,
		"Skip confirmation")

	webhookCmd.AddCommand(webhookAddCmd)
	webhookCmd.AddCommand(webhookListCmd)
	webhookCmd.AddCommand(webhookTestCmd)
	webhookCmd.AddCommand(webhookRemoveCmd)
	webhookCmd.AddCommand(webhookEnableCmd)
	webhookCmd.AddCommand(webhookDisableCmd)

	rootCmd.AddCommand(webhookCmd)
}

func runWebhookAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	webhookURL := args[1]

	if !model.IsValidWebhookName(name) {
		return fmt.Errorf("invalid webhook name: must be alphanumeric with dash/underscore, max 50 chars")
	}

	if _, err := url.Parse(webhookURL); err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}

	exists, err := ctx.Webhooks.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("webhook %q already exists", name)
	}

	webhookType := webhookAddFlagType
	if webhookType == "" {
		webhookType = model.DetectWebhookType(webhookURL)
	}
	if !model.IsValidWebhookType(webhookType) {
		return fmt.Errorf("invalid webhook type: must be discord, slack, or generic")
	}

	webhook := model.NewWebhook(name, webhookType, webhookURL)
	if webhookAddFlagTemplate != "" {
		webhook.Template = webhookAddFlagTemplate
	}

	if err := ctx.Webhooks.Create(webhook); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"name":    webhook.Name,
			"type":    webhook.Type,
			"url":     webhook.MaskedURL(),
			"enabled": webhook.Enabled,
		})
	}
	ctx.CLIFormatter().Success("Added " + webhook.Type + " webhook " + webhook.Name)
	return nil
}

func runWebhookList(cmd *cobra.Command, args []string) error {
	webhooks, err := ctx.Webhooks.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(webhooks)
	}

	cli := ctx.CLIFormatter()
	if len(webhooks) == 0 {
		cli.Muted("No webhooks configured.")
		cli.Muted("Use 'shepherd webhook add NAME URL' to add one.")
		return nil
	}

	rows := make([]output.TableRow, 0, len(webhooks))
	for _, w := range webhooks {
		state := "enabled"
		if !w.Enabled {
			state = "disabled"
		}
		lastUsed := "-"
		if !w.LastUsed.IsZero() {
			lastUsed = output.FormatTimeShort(w.LastUsed)
		}
		rows = append(rows, output.TableRow{Columns: []string{
			w.Name, w.Type, state, w.MaskedURL(), lastUsed,
		}})
	}
	cli.PrintTable([]string{"NAME", "TYPE", "STATE", "URL", "LAST USED"}, rows)
	return nil
}

func runWebhookTest(cmd *cobra.Command, args []string) error {
	name := args[0]

	n := model.NewNotification(model.NotifyInfo, "Shepherd test",
		"Webhook "+name+" is configured correctly.", model.Target{}, time.Now())

	sendCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	result := ctx.Notifier.SendToSingle(sendCtx, n, name)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"webhook": result.WebhookName,
			"success": result.Success,
			"status":  result.StatusCode,
			"error":   errString(result.Error),
		})
	}

	cli := ctx.CLIFormatter()
	if result.Error != nil {
		cli.Error(fmt.Sprintf("Delivery to %s failed: %v", name, result.Error))
		return nil
	}
	cli.Success(fmt.Sprintf("Delivered to %s in %s", name, result.Duration.Round(time.Millisecond)))
	return nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func runWebhookRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := ctx.Webhooks.Get(name); err != nil {
		if storage.IsErrKeyNotFound(err) {
			return fmt.Errorf("webhook %q not found", name)
		}
		return err
	}

	if !webhookRemoveFlagForce {
		confirmed, err := promptConfirmation("Remove webhook " + name + "? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.CLIFormatter().Muted("Cancelled")
			return nil
		}
	}

	if err := ctx.Webhooks.Delete(name); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": name})
	}
	ctx.CLIFormatter().Success("Removed webhook " + name)
	return nil
}

func runWebhookEnable(cmd *cobra.Command, args []string) error {
	return setWebhookEnabled(args[0], true)
}

func runWebhookDisable(cmd *cobra.Command, args []string) error {
	return setWebhookEnabled(args[0], false)
}

func setWebhookEnabled(name string, enabled bool) error {
	if err := ctx.Webhooks.SetEnabled(name, enabled); err != nil {
		if storage.IsErrKeyNotFound(err) {
			return fmt.Errorf("webhook %q not found", name)
		}
		return err
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"name": name, "state": state})
	}
	ctx.CLIFormatter().Success("Webhook " + name + " " + state)
	return nil
}
