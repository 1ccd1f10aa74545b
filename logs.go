package late

import (
	"context"
	"time"

	"github.com/kbukum/late-go/httpclient"
)

// PublishLog is a platform API exchange made while publishing.
type PublishLog struct {
	ID           string    `json:"_id"`
	PostID       string    `json:"postId,omitempty"`
	AccountID    string    `json:"accountId,omitempty"`
	Platform     string    `json:"platform"`
	Action       string    `json:"action"`
	Status       string    `json:"status"`
	StatusCode   int       `json:"statusCode,omitempty"`
	DurationMs   int       `json:"durationMs,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Request      any       `json:"request,omitempty"`
	Response     any       `json:"response,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListLogsParams filters Logs.List.
type ListLogsParams struct {
	Status   string
	Platform string
	Action   string
	Days     int
	Limit    int
	Skip     int
}

// LogsPage is a page of publishing logs.
type LogsPage struct {
	Logs       []PublishLog `json:"logs"`
	Pagination Pagination   `json:"pagination"`
}

// LogsService reads publishing logs.
type LogsService struct {
	client *Client
}

// List returns publishing logs, newest first.
func (s *LogsService) List(ctx context.Context, params *ListLogsParams) (*LogsPage, error) {
	var p ListLogsParams
	if params != nil {
		p = *params
	}
	return doGet[LogsPage](ctx, s.client, newCall("logs.list", "/v1/logs", "/v1/logs",
		httpclient.WithQueryParam("status", p.Status),
		httpclient.WithQueryParam("platform", p.Platform),
		httpclient.WithQueryParam("action", p.Action),
		intParam("days", p.Days),
		intParam("limit", p.Limit),
		intParam("skip", p.Skip),
	))
}

// Get returns a publishing log with its request and response payloads.
func (s *LogsService) Get(ctx context.Context, logID string) (*PublishLog, error) {
	const op = "logs.get"
	if err := checkID(op, "logId", logID); err != nil {
		return nil, err
	}
	out, err := doGet[struct {
		Log PublishLog `json:"log"`
	}](ctx, s.client, newCall(op, "/v1/logs/{logId}", "/v1/logs/"+seg(logID)))
	if err != nil {
		return nil, err
	}
	return &out.Log, nil
}
