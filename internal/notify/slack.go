package notify

import (
	"encoding/json"
	"fmt"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// SlackFormatter formats notifications for Slack incoming webhooks.
type SlackFormatter struct{}

type slackBlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type string          `json:"type"`
	Text *slackBlockText `json:"text,omitempty"`
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

// Format converts a notification to a Slack webhook payload.
func (f *SlackFormatter) Format(n *model.Notification) ([]byte, error) {
	payload := slackPayload{
		Text: fmt.Sprintf("%s: %s", n.Title, n.Message),
		Blocks: []slackBlock{
			{
				Type: "header",
				Text: &slackBlockText{Type: "plain_text", Text: n.Title},
			},
			{
				Type: "section",
				Text: &slackBlockText{Type: "mrkdwn", Text: n.Message},
			},
		},
	}
	return json.Marshal(payload)
}

// ContentType returns the content type for Slack webhooks.
func (f *SlackFormatter) ContentType() string {
	return "application/json"
}
