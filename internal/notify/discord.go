package notify

import (
	"encoding/json"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// DiscordFormatter formats notifications as Discord webhook embeds.
type DiscordFormatter struct{}

type discordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
}

type discordPayload struct {
	Username string         `json:"username"`
	Embeds   []discordEmbed `json:"embeds"`
}

// Format converts a notification to a Discord webhook payload.
func (f *DiscordFormatter) Format(n *model.Notification) ([]byte, error) {
	payload := discordPayload{
		Username: "Shepherd",
		Embeds: []discordEmbed{{
			Title:       n.Title,
			Description: n.Message,
			Color:       colorForType(n.Type),
			Timestamp:   n.Date.UTC().Format("2006-01-02T15:04:05Z"),
		}},
	}
	return json.Marshal(payload)
}

// ContentType returns the content type for Discord webhooks.
func (f *DiscordFormatter) ContentType() string {
	return "application/json"
}
