package late

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/late-go/apierror"
	"github.com/kbukum/late-go/httpclient"
	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
	"github.com/kbukum/late-go/validation"
)

const (
	// DefaultBaseURL is the hosted Late API.
	DefaultBaseURL = "https://getlate.dev/api"
	// DefaultTimeout bounds each call.
	DefaultTimeout = 60 * time.Second
	// EnvAPIKey is the environment variable NewFromEnv reads.
	EnvAPIKey = "LATE_API_KEY"
)

// ErrMissingAPIKey matches, through errors.Is, the error New returns when no
// API key is configured. That error is also an HTTP 401 API error with code
// missing_api_key.
var ErrMissingAPIKey = errors.New("late: missing API key")

const missingAPIKeyMessage = "The " + EnvAPIKey + " environment variable is missing or empty; either provide it, " +
	"or create the client with an explicit key, like late.New(late.Options{APIKey: \"sk_...\"})."

// missingAPIKeyError is built per call so no caller can alter another's copy.
type missingAPIKeyError struct {
	*apierror.APIError
}

func (missingAPIKeyError) Is(target error) bool { return target == ErrMissingAPIKey }

func (e missingAPIKeyError) Unwrap() error { return e.APIError }

func newMissingAPIKeyError() error {
	return missingAPIKeyError{apierror.New(missingAPIKeyMessage, http.StatusUnauthorized, apierror.CodeMissingAPIKey, nil)}
}

// Options configures a Client.
type Options struct {
	// APIKey is sent as a bearer token on every request. Required.
	APIKey string `mapstructure:"api_key" validate:"required"`
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,http_url"`
	// Timeout bounds each call. Defaults to DefaultTimeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// DefaultHeaders are merged into every request.
	DefaultHeaders map[string]string `mapstructure:"default_headers"`

	// Logger receives transport logs. Defaults to a no-op logger.
	Logger *logger.Logger `mapstructure:"-" validate:"-"`
	// HTTPClient replaces the underlying *http.Client.
	HTTPClient *http.Client `mapstructure:"-" validate:"-"`
	// Metrics records call metrics. Nil disables them.
	Metrics *observability.ClientMetrics `mapstructure:"-" validate:"-"`
	// TracerProvider creates call spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider `mapstructure:"-" validate:"-"`
}

func (o *Options) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
}

// Client is a Late API client. It is safe for concurrent use.
type Client struct {
	http   *httpclient.Client
	apiKey string

	Posts         *PostsService
	Accounts      *AccountsService
	AccountGroups *AccountGroupsService
	Profiles      *ProfilesService
	Queue         *QueueService
	Webhooks      *WebhooksService
	APIKeys       *APIKeysService
	Media         *MediaService
	Usage         *UsageService
	Logs          *LogsService
	Users         *UsersService
}

// New creates a client. It returns ErrMissingAPIKey when opts.APIKey is
// empty and a *validation.Error when other options are malformed.
func New(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, newMissingAPIKeyError()
	}
	opts.applyDefaults()
	if err := validation.Validate(opts); err != nil {
		return nil, fmt.Errorf("late: invalid options: %w", err)
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:        opts.BaseURL,
		Timeout:        opts.Timeout,
		Auth:           httpclient.BearerAuth(opts.APIKey),
		Headers:        opts.DefaultHeaders,
		HTTPClient:     opts.HTTPClient,
		Logger:         opts.Logger,
		Metrics:        opts.Metrics,
		TracerProvider: opts.TracerProvider,
	})
	if err != nil {
		return nil, fmt.Errorf("late: %w", err)
	}

	c := &Client{
		http:   hc,
		apiKey: opts.APIKey,
	}
	c.Posts = &PostsService{client: c}
	c.Accounts = &AccountsService{client: c}
	c.AccountGroups = &AccountGroupsService{client: c}
	c.Profiles = &ProfilesService{client: c}
	c.Queue = &QueueService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	c.APIKeys = &APIKeysService{client: c}
	c.Media = &MediaService{client: c}
	c.Usage = &UsageService{client: c}
	c.Logs = &LogsService{client: c}
	c.Users = &UsersService{client: c}
	return c, nil
}

// NewFromEnv creates a client whose API key comes from LATE_API_KEY. The
// environment is read once, here; options are applied afterwards and may
// override the key.
func NewFromEnv(options ...Option) (*Client, error) {
	opts := Options{APIKey: os.Getenv(EnvAPIKey)}
	for _, o := range options {
		o(&opts)
	}
	return New(opts)
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string { return c.apiKey }

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.http.BaseURL() }

// Transport returns the underlying HTTP transport for calls the services do
// not cover.
func (c *Client) Transport() *httpclient.Client { return c.http }
