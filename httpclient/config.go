package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
	"github.com/kbukum/late-go/version"
)

const (
	defaultTimeout = 60 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each call, including reading the response body.
	// Defaults to 60s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent is sent on every request. Defaults to version.UserAgent().
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// HTTPClient replaces the underlying client. Its own Timeout is left as
	// is; Timeout above still bounds every call through the request context.
	HTTPClient *http.Client `yaml:"-" mapstructure:"-"`

	// Logger receives per-call debug and warn logs. Defaults to a no-op logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// Metrics records call counts and durations. Nil disables metrics.
	Metrics *observability.ClientMetrics `yaml:"-" mapstructure:"-"`

	// TracerProvider creates call spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Logger == nil {
		c.Logger = logger.NewNop()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("httpclient: base_url must be an absolute URL (got: %q)", c.BaseURL)
		}
	}
	return nil
}
