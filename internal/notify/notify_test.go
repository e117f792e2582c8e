package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		webhookType string
		expected    string
	}{
		{model.WebhookTypeDiscord, "*notify.DiscordFormatter"},
		{model.WebhookTypeSlack, "*notify.SlackFormatter"},
		{model.WebhookTypeGeneric, "*notify.GenericFormatter"},
		{"unknown", "*notify.GenericFormatter"},
		{"", "*notify.GenericFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.webhookType, func(t *testing.T) {
			formatter := GetFormatter(tt.webhookType)
			assert.NotNil(t, formatter)
			assert.Equal(t, tt.expected, fmt.Sprintf("%T", formatter))
		})
	}
}

func TestDiscordFormatter(t *testing.T) {
	formatter := &DiscordFormatter{}

	t.Run("content_type", func(t *testing.T) {
		assert.Equal(t, "application/json", formatter.ContentType())
	})

	t.Run("format_notification", func(t *testing.T) {
		n := model.NewNotification(model.NotifyReminder, "Visit to Mary Smith - Follow-up",
			"Scheduled within the next hour", model.Target{}, time.Now())

		payload, err := formatter.Format(n)
		require.NoError(t, err)

		var decoded discordPayload
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "Shepherd", decoded.Username)
		require.Len(t, decoded.Embeds, 1)
		assert.Equal(t, n.Title, decoded.Embeds[0].Title)
		assert.Equal(t, n.Message, decoded.Embeds[0].Description)
		assert.Equal(t, colorReminder, decoded.Embeds[0].Color)
	})
}

func TestSlackFormatter(t *testing.T) {
	formatter := &SlackFormatter{}

	t.Run("content_type", func(t *testing.T) {
		assert.Equal(t, "application/json", formatter.ContentType())
	})

	t.Run("format_notification", func(t *testing.T) {
		n := &model.Notification{Title: "Urgent calls waiting", Message: "You have 3 urgent calls to make."}

		payload, err := formatter.Format(n)
		require.NoError(t, err)
		assert.Contains(t, string(payload), "Urgent calls waiting")
		assert.Contains(t, string(payload), "3 urgent calls")
	})
}

func TestGenericFormatter(t *testing.T) {
	t.Run("default_payload", func(t *testing.T) {
		formatter := &GenericFormatter{}
		n := model.NewNotification(model.NotifyInfo, "Event in 30 minutes", "Bible study at 19:00",
			model.Target{}, time.Now())

		payload, err := formatter.Format(n)
		require.NoError(t, err)

		var decoded genericPayload
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "info", decoded.Type)
		assert.Equal(t, n.Title, decoded.Title)
		assert.Equal(t, n.Message, decoded.Message)
		assert.Equal(t, colorInfo, decoded.Color)
	})

	t.Run("custom_template", func(t *testing.T) {
		formatter := &GenericFormatter{Template: `{"text": "{{.Title}}: {{.Message}}"}`}
		n := &model.Notification{Title: "Sermon to prepare", Message: "Draft due tomorrow"}

		payload, err := formatter.Format(n)
		require.NoError(t, err)
		assert.Equal(t, `{"text": "Sermon to prepare: Draft due tomorrow"}`, string(payload))
	})

	t.Run("bad_template", func(t *testing.T) {
		formatter := &GenericFormatter{Template: `{{.Title`}
		_, err := formatter.Format(&model.Notification{Title: "x"})
		assert.Error(t, err)
	})
}

func TestHTTPClientSend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient()
		result := client.Send(context.Background(), server.URL, "application/json", []byte(`{}`))
		assert.NoError(t, result.Error)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, 1, result.Attempts)
	})

	t.Run("no_retry_on_client_error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewHTTPClient()
		result := client.Send(context.Background(), server.URL, "application/json", nil)
		assert.Error(t, result.Error)
		assert.Equal(t, http.StatusBadRequest, result.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestDispatcher(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	repo := storage.NewWebhookRepo(db)
	dispatcher := NewDispatcher(repo)

	t.Run("no_webhooks_is_a_noop", func(t *testing.T) {
		results := dispatcher.Send(context.Background(), &model.Notification{Title: "x"})
		assert.Nil(t, results)
	})

	t.Run("delivers_to_enabled_webhooks", func(t *testing.T) {
		var received int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&received, 1)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		require.NoError(t, repo.Create(model.NewWebhook("study-group", model.WebhookTypeDiscord, server.URL)))
		disabled := model.NewWebhook("archived", model.WebhookTypeSlack, server.URL)
		disabled.Enabled = false
		require.NoError(t, repo.Create(disabled))

		n := model.NewNotification(model.NotifyReminder, "Event in 30 minutes", "Choir practice at 18:30",
			model.Target{}, time.Now())
		results := dispatcher.Send(context.Background(), n)

		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
		assert.Equal(t, "study-group", results[0].WebhookName)
		assert.Equal(t, int32(1), atomic.LoadInt32(&received))

		// Delivery outcome is recorded on the webhook.
		w, err := repo.Get("study-group")
		require.NoError(t, err)
		assert.False(t, w.LastUsed.IsZero())
		assert.Empty(t, w.LastError)
	})

	t.Run("failure_recorded_on_webhook", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		require.NoError(t, repo.Create(model.NewWebhook("broken", model.WebhookTypeGeneric, server.URL)))

		result := dispatcher.SendToSingle(context.Background(), &model.Notification{Title: "t"}, "broken")
		assert.False(t, result.Success)
		assert.Error(t, result.Error)

		w, err := repo.Get("broken")
		require.NoError(t, err)
		assert.Contains(t, w.LastError, "403")
	})
}
