package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/late-go/apierror"
	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
)

// Client is a configurable HTTP client with auth, tracing, and API error
// classification. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	tracer     trace.Tracer
	log        *logger.Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		tracer:     observability.Tracer(cfg.TracerProvider),
		log:        cfg.Logger.WithComponent("httpclient"),
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes one HTTP exchange. For a response outside 2xx it returns the
// response together with its classified apierror.Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	requestID := lookupHeader(req.Headers, HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	route := req.route()
	ctx, span := observability.StartCallSpan(ctx, c.tracer, observability.Call{
		Method:    req.Method,
		Path:      route,
		Host:      httpReq.URL.Host,
		RequestID: requestID,
	})
	httpReq = httpReq.WithContext(ctx)

	metrics := c.config.Metrics
	metrics.CallStarted(ctx)
	defer metrics.CallFinished(ctx)

	start := time.Now()
	resp, body, err := c.send(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		tErr := classifyTransport(ctx, err)
		metrics.RecordTransportError(ctx, tErr.Code.String())
		c.log.WithContext(ctx).Warn("request failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, route,
			logger.FieldRequestID, requestID,
			logger.FieldErrorCode, tErr.Code.String(),
			logger.FieldDuration, elapsed.Milliseconds(),
			logger.FieldError, tErr.Message,
		))
		observability.EndCallSpan(span, 0, tErr)
		return nil, tErr
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Status:     apierror.FromHTTP(resp).StatusText,
		Headers:    resp.Header,
		Body:       body,
		RequestID:  requestID,
	}
	metrics.RecordCall(ctx, req.Method, route, resp.StatusCode, elapsed)

	if result.IsSuccess() {
		c.log.WithContext(ctx).Debug("request completed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, route,
			logger.FieldStatusCode, resp.StatusCode,
			logger.FieldRequestID, requestID,
			logger.FieldDuration, elapsed.Milliseconds(),
			logger.FieldAuth, c.authFor(req).Scheme(),
		))
		observability.EndCallSpan(span, resp.StatusCode, nil)
		return result, nil
	}

	apiErr := apierror.FromHTTPResponse(resp, body)
	base, _ := apierror.AsAPIError(apiErr)
	metrics.RecordAPIError(ctx, apiErr.Kind().String(), resp.StatusCode)
	c.log.WithContext(ctx).Warn("api error", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, route,
		logger.FieldStatusCode, resp.StatusCode,
		logger.FieldRequestID, requestID,
		logger.FieldErrorKind, apiErr.Kind().String(),
		logger.FieldErrorCode, base.Code,
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	observability.EndCallSpan(span, resp.StatusCode, apiErr)
	return result, apiErr
}

// send performs the exchange and reads the full body.
func (c *Client) send(httpReq *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp, body, nil
}

// classifyTransport maps a failed exchange to an *Error.
func classifyTransport(ctx context.Context, err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return NewCanceledError(err)
	case ctx.Err() != nil, errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return NewTimeoutError(err)
	default:
		return NewConnectionError(err)
	}
}

// buildRequest turns req into an *http.Request carrying the client's
// defaults, the caller's overrides and the credentials in force.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	p, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewRequestError("encode body: "+err.Error(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, resolveURL(c.config.BaseURL, req.Path), p.r)
	if err != nil {
		return nil, NewRequestError("create request: "+err.Error(), err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	if req.ContentLength > 0 {
		httpReq.ContentLength = req.ContentLength
	}

	// Client credentials go first so DefaultHeaders can replace them. A
	// per-request Auth is the caller's explicit choice and goes last.
	h := httpReq.Header
	h.Set("Accept", "application/json")
	h.Set("User-Agent", c.config.UserAgent)
	if req.Auth == nil {
		c.config.Auth.apply(httpReq)
	}
	setHeaders(h, c.config.Headers)
	setHeaders(h, req.Headers)
	if req.Auth != nil {
		req.Auth.apply(httpReq)
	}
	h.Set(HeaderRequestID, requestID)
	if p.r != nil && p.contentType != "" && h.Get("Content-Type") == "" {
		h.Set("Content-Type", p.contentType)
	}
	return httpReq, nil
}

// lookupHeader finds name in a header map whatever the key's case.
func lookupHeader(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// resolveURL joins path onto base with exactly one slash. An absolute path,
// such as a presigned upload URL, is used as is.
func resolveURL(base, path string) string {
	if base == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func setHeaders(h http.Header, values map[string]string) {
	for k, v := range values {
		h.Set(k, v)
	}
}

// authFor returns the request's credentials, falling back to the client's.
func (c *Client) authFor(req Request) *AuthConfig {
	if req.Auth != nil {
		return req.Auth
	}
	return c.config.Auth
}

type payload struct {
	r           io.Reader
	contentType string
}

// encodeBody picks a reader and default Content-Type for a Request body.
// Readers and byte slices go out untyped; anything unrecognized is JSON.
func encodeBody(body any) (payload, error) {
	switch v := body.(type) {
	case nil:
		return payload{}, nil
	case *MultipartBody:
		r, ct, err := v.encode()
		return payload{r, ct}, err
	case io.Reader:
		return payload{r: v}, nil
	case []byte:
		return payload{r: bytes.NewReader(v)}, nil
	case string:
		return payload{strings.NewReader(v), "text/plain"}, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return payload{}, err
	}
	return payload{bytes.NewReader(data), "application/json"}, nil
}
