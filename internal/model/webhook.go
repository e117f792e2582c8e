package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PrefixWebhook is the database key prefix for webhooks.
const PrefixWebhook = "webhook"

// Webhook type constants.
const (
	WebhookTypeDiscord = "discord"
	WebhookTypeSlack   = "slack"
	WebhookTypeGeneric = "generic"
)

// Webhook is an outbound notification channel. Webhooks stand in for
// platform-level notifications: reminder emissions are mirrored to every
// enabled webhook, best-effort.
type Webhook struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Enabled   bool      `json:"enabled"`
	Template  string    `json:"template,omitempty"` // for generic webhooks
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// SetKey sets the database key for this webhook.
func (w *Webhook) SetKey(key string) {
	w.Key = key
}

// GetKey returns the database key for this webhook.
func (w *Webhook) GetKey() string {
	return w.Key
}

// MaskedURL returns the URL with the sensitive tail masked.
func (w *Webhook) MaskedURL() string {
	if len(w.URL) > 40 {
		return w.URL[:30] + "***"
	}
	return w.URL
}

// IsValidWebhookType reports whether t is a supported webhook type.
func IsValidWebhookType(t string) bool {
	switch t {
	case WebhookTypeDiscord, WebhookTypeSlack, WebhookTypeGeneric:
		return true
	}
	return false
}

// DetectWebhookType guesses the webhook type from its URL.
func DetectWebhookType(url string) string {
	switch {
	case strings.Contains(url, "discord.com/api/webhooks"):
		return WebhookTypeDiscord
	case strings.Contains(url, "hooks.slack.com"):
		return WebhookTypeSlack
	default:
		return WebhookTypeGeneric
	}
}

var webhookNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)

// IsValidWebhookName reports whether name is usable as a webhook key part.
func IsValidWebhookName(name string) bool {
	return webhookNameRegex.MatchString(name)
}

// GenerateWebhookKey generates a database key for a webhook.
func GenerateWebhookKey(name string) string {
	return fmt.Sprintf("%s:%s", PrefixWebhook, name)
}

// NewWebhook creates a new enabled webhook.
func NewWebhook(name, webhookType, url string) *Webhook {
	return &Webhook{
		Key:       GenerateWebhookKey(name),
		Name:      name,
		Type:      webhookType,
		URL:       url,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
}
