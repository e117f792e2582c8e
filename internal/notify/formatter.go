package notify

import (
	"github.com/shepherd-cli/shepherd/internal/model"
)

// Formatter formats notifications for a specific webhook type.
type Formatter interface {
	// Format converts a notification into the webhook-specific payload.
	Format(n *model.Notification) ([]byte, error)

	// ContentType returns the HTTP Content-Type for the payload.
	ContentType() string
}

// GetFormatter returns the appropriate formatter for a webhook type.
func GetFormatter(webhookType string) Formatter {
	switch webhookType {
	case model.WebhookTypeDiscord:
		return &DiscordFormatter{}
	case model.WebhookTypeSlack:
		return &SlackFormatter{}
	default:
		return &GenericFormatter{}
	}
}

// Embed colors per notification type (Discord-compatible hex values).
const (
	colorReminder = 0xF59E0B // amber
	colorInfo     = 0x3B82F6 // blue
)

func colorForType(t model.NotificationType) int {
	if t == model.NotifyReminder {
		return colorReminder
	}
	return colorInfo
}
