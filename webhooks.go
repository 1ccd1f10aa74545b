package late

import (
	"context"
	"time"

	"github.com/kbukum/late-go/httpclient"
)

// Webhook events.
const (
	EventPostScheduled       = "post.scheduled"
	EventPostPublished       = "post.published"
	EventPostFailed          = "post.failed"
	EventPostPartial         = "post.partial"
	EventAccountDisconnected = "account.disconnected"
)

// WebhookSettings is the webhook endpoint of the account.
type WebhookSettings struct {
	ID       string   `json:"_id,omitempty"`
	Name     string   `json:"name,omitempty"`
	URL      string   `json:"url"`
	Secret   string   `json:"secret,omitempty"`
	Events   []string `json:"events"`
	IsActive bool     `json:"isActive"`
}

// WebhookSettingsRequest is the payload of Webhooks.CreateSettings and
// Webhooks.UpdateSettings.
type WebhookSettingsRequest struct {
	ID       string   `json:"_id,omitempty"`
	Name     string   `json:"name,omitempty"`
	URL      string   `json:"url,omitempty" validate:"omitempty,http_url"`
	Secret   string   `json:"secret,omitempty"`
	Events   []string `json:"events,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// WebhookSettingsResult wraps the webhook settings.
type WebhookSettingsResult struct {
	Success  bool              `json:"success,omitempty"`
	Webhooks []WebhookSettings `json:"webhooks"`
}

// WebhookTestResult reports the delivery of a test event.
type WebhookTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WebhookLog is one webhook delivery attempt.
type WebhookLog struct {
	ID           string    `json:"_id"`
	WebhookID    string    `json:"webhookId,omitempty"`
	Event        string    `json:"event"`
	URL          string    `json:"url"`
	Status       string    `json:"status"`
	StatusCode   int       `json:"statusCode,omitempty"`
	ResponseTime int       `json:"responseTime,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WebhookLogsParams filters Webhooks.GetLogs.
type WebhookLogsParams struct {
	Limit     int
	Status    string
	Event     string
	WebhookID string
}

// WebhooksService manages webhook delivery.
type WebhooksService struct {
	client *Client
}

// GetSettings returns the configured webhooks.
func (s *WebhooksService) GetSettings(ctx context.Context) (*WebhookSettingsResult, error) {
	return doGet[WebhookSettingsResult](ctx, s.client,
		newCall("webhooks.getSettings", "/v1/webhooks/settings", "/v1/webhooks/settings"))
}

// CreateSettings registers a webhook.
func (s *WebhooksService) CreateSettings(ctx context.Context, req *WebhookSettingsRequest) (*WebhookSettingsResult, error) {
	const op = "webhooks.createSettings"
	if req == nil {
		req = &WebhookSettingsRequest{}
	}
	if err := checkID(op, "url", req.URL); err != nil {
		return nil, err
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPost[WebhookSettingsResult](ctx, s.client,
		newCall(op, "/v1/webhooks/settings", "/v1/webhooks/settings"), req)
}

// UpdateSettings changes a webhook.
func (s *WebhooksService) UpdateSettings(ctx context.Context, req *WebhookSettingsRequest) (*WebhookSettingsResult, error) {
	const op = "webhooks.updateSettings"
	if req == nil {
		req = &WebhookSettingsRequest{}
	}
	if err := checkBody(op, req); err != nil {
		return nil, err
	}
	return doPut[WebhookSettingsResult](ctx, s.client,
		newCall(op, "/v1/webhooks/settings", "/v1/webhooks/settings"), req)
}

// DeleteSettings removes a webhook.
func (s *WebhooksService) DeleteSettings(ctx context.Context, webhookID string) (*DeleteResponse, error) {
	const op = "webhooks.deleteSettings"
	if err := checkID(op, "id", webhookID); err != nil {
		return nil, err
	}
	return doDelete[DeleteResponse](ctx, s.client, newCall(op, "/v1/webhooks/settings", "/v1/webhooks/settings",
		httpclient.WithQueryParam("id", webhookID)))
}

// Test sends a test event to a webhook.
func (s *WebhooksService) Test(ctx context.Context, webhookID string) (*WebhookTestResult, error) {
	const op = "webhooks.test"
	if err := checkID(op, "webhookId", webhookID); err != nil {
		return nil, err
	}
	return doPost[WebhookTestResult](ctx, s.client, newCall(op, "/v1/webhooks/test", "/v1/webhooks/test"),
		map[string]string{"webhookId": webhookID})
}

// GetLogs returns recent webhook deliveries.
func (s *WebhooksService) GetLogs(ctx context.Context, params *WebhookLogsParams) ([]WebhookLog, error) {
	var p WebhookLogsParams
	if params != nil {
		p = *params
	}
	out, err := doGet[struct {
		Logs []WebhookLog `json:"logs"`
	}](ctx, s.client, newCall("webhooks.getLogs", "/v1/webhooks/logs", "/v1/webhooks/logs",
		intParam("limit", p.Limit),
		httpclient.WithQueryParam("status", p.Status),
		httpclient.WithQueryParam("event", p.Event),
		httpclient.WithQueryParam("webhookId", p.WebhookID),
	))
	if err != nil {
		return nil, err
	}
	return out.Logs, nil
}
