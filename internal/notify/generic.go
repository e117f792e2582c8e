package notify

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// GenericFormatter formats notifications for generic webhooks.
type GenericFormatter struct {
	// Template is an optional custom template for the payload.
	Template string
}

// genericPayload is the default payload for generic webhooks.
type genericPayload struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Color     int    `json:"color,omitempty"`
}

// Format converts a notification to a generic webhook format.
func (f *GenericFormatter) Format(n *model.Notification) ([]byte, error) {
	if f.Template != "" {
		return f.formatWithTemplate(n)
	}

	payload := genericPayload{
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Date.UTC().Format("2006-01-02T15:04:05Z"),
		Color:     colorForType(n.Type),
	}

	return json.Marshal(payload)
}

// formatWithTemplate uses a custom template to format the notification.
func (f *GenericFormatter) formatWithTemplate(n *model.Notification) ([]byte, error) {
	tmpl, err := template.New("webhook").Parse(f.Template)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"Type":      string(n.Type),
		"Title":     n.Title,
		"Message":   n.Message,
		"Timestamp": n.Date,
		"Color":     colorForType(n.Type),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ContentType returns the content type for generic webhooks.
func (f *GenericFormatter) ContentType() string {
	return "application/json"
}
