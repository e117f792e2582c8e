// Package notify delivers reminder notifications to outbound webhooks.
// Webhooks are the platform-notification channel of the organizer: every
// reminder emission is mirrored, best-effort, to every enabled webhook.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shepherd-cli/shepherd/internal/logging"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/storage"
)

// Dispatcher sends notifications to all enabled webhooks.
type Dispatcher struct {
	webhookRepo *storage.WebhookRepo
	httpClient  *HTTPClient
}

// NewDispatcher creates a new notification dispatcher.
func NewDispatcher(webhookRepo *storage.WebhookRepo) *Dispatcher {
	return &Dispatcher{
		webhookRepo: webhookRepo,
		httpClient:  NewHTTPClient(),
	}
}

// DispatchResult contains the result of dispatching to a single webhook.
type DispatchResult struct {
	WebhookName string
	Success     bool
	StatusCode  int
	Duration    time.Duration
	Error       error
}

// Send delivers a notification to all enabled webhooks concurrently. No
// webhooks configured means nothing to do, which is not an error.
func (d *Dispatcher) Send(ctx context.Context, n *model.Notification) []DispatchResult {
	webhooks, err := d.webhookRepo.ListEnabled()
	if err != nil {
		return []DispatchResult{{
			WebhookName: "all",
			Error:       fmt.Errorf("failed to list webhooks: %w", err),
		}}
	}
	if len(webhooks) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	results := make([]DispatchResult, len(webhooks))

	for i, webhook := range webhooks {
		wg.Add(1)
		go func(idx int, wh *model.Webhook) {
			defer wg.Done()
			results[idx] = d.sendToWebhook(ctx, n, wh)
		}(i, webhook)
	}

	wg.Wait()
	return results
}

// SendToSingle delivers a notification to one webhook by name.
func (d *Dispatcher) SendToSingle(ctx context.Context, n *model.Notification, name string) DispatchResult {
	webhook, err := d.webhookRepo.Get(name)
	if err != nil {
		return DispatchResult{WebhookName: name, Error: err}
	}
	return d.sendToWebhook(ctx, n, webhook)
}

// Notify implements the best-effort platform notification raise. Delivery
// failures are logged and otherwise swallowed.
func (d *Dispatcher) Notify(title, body string) {
	n := model.NewNotification(model.NotifyReminder, title, body, model.Target{}, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	for _, result := range d.Send(ctx, n) {
		if result.Error != nil {
			logging.L().Warn("webhook delivery failed",
				"webhook", result.WebhookName, "error", result.Error)
		}
	}
}

func (d *Dispatcher) sendToWebhook(ctx context.Context, n *model.Notification, webhook *model.Webhook) DispatchResult {
	result := DispatchResult{WebhookName: webhook.Name}

	var formatter Formatter
	if webhook.Type == model.WebhookTypeGeneric && webhook.Template != "" {
		formatter = &GenericFormatter{Template: webhook.Template}
	} else {
		formatter = GetFormatter(webhook.Type)
	}

	payload, err := formatter.Format(n)
	if err != nil {
		result.Error = fmt.Errorf("failed to format notification: %w", err)
		d.updateWebhookStatus(webhook.Name, result.Error)
		return result
	}

	sendResult := d.httpClient.Send(ctx, webhook.URL, formatter.ContentType(), payload)

	result.StatusCode = sendResult.StatusCode
	result.Duration = sendResult.Duration
	result.Error = sendResult.Error
	result.Success = sendResult.Error == nil

	d.updateWebhookStatus(webhook.Name, sendResult.Error)
	return result
}

// updateWebhookStatus records the delivery outcome; its own failure is not
// critical.
func (d *Dispatcher) updateWebhookStatus(name string, err error) {
	_ = d.webhookRepo.UpdateLastUsed(name, err)
}
