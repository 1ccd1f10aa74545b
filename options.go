package late

import (
	"maps"
	"net/http"
	"time"

	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
)

// Option adjusts Options, for use with NewFromEnv.
type Option func(*Options)

// WithAPIKey overrides the API key.
func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(o *Options) { o.BaseURL = url }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithDefaultHeaders adds headers sent on every request.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(o *Options) {
		if o.DefaultHeaders == nil {
			o.DefaultHeaders = make(map[string]string, len(headers))
		}
		maps.Copy(o.DefaultHeaders, headers)
	}
}

// WithLogger sets the transport logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) { o.HTTPClient = hc }
}

// WithMetrics records call metrics on m.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(o *Options) { o.Metrics = m }
}
