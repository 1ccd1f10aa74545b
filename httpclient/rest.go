package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// TypedResponse is a 2xx response whose JSON body was decoded into Data.
type TypedResponse[T any] struct {
	StatusCode int
	Headers    http.Header
	RequestID  string
	Data       T
}

// RequestOption tweaks one Request before it is sent.
type RequestOption func(*Request)

func setEntry(m *map[string]string, key, value string) {
	if *m == nil {
		*m = make(map[string]string)
	}
	(*m)[key] = value
}

// WithHeader sets a header on this request only.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) { setEntry(&r.Headers, key, value) }
}

// WithQueryParam sets a query parameter. An empty value is dropped, so
// optional filters can be passed without checking them first.
func WithQueryParam(key, value string) RequestOption {
	return func(r *Request) {
		if value != "" {
			setEntry(&r.Query, key, value)
		}
	}
}

// WithRoute names the path template used for spans and metrics,
// e.g. "/v1/posts/{postId}".
func WithRoute(route string) RequestOption {
	return func(r *Request) { r.Route = route }
}

// WithRequestAuth replaces the client credentials for this request.
func WithRequestAuth(auth *AuthConfig) RequestOption {
	return func(r *Request) { r.Auth = auth }
}

func Get[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return Call[T](c, ctx, http.MethodGet, path, nil, opts...)
}

func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return Call[T](c, ctx, http.MethodPost, path, body, opts...)
}

func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return Call[T](c, ctx, http.MethodPut, path, body, opts...)
}

func Patch[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return Call[T](c, ctx, http.MethodPatch, path, body, opts...)
}

func Delete[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return Call[T](c, ctx, http.MethodDelete, path, nil, opts...)
}

// Call sends one request and decodes a 2xx JSON body into T. An empty body
// leaves Data at its zero value. Non-2xx answers come back only as the
// classified apierror value.
func Call[T any](c *Client, ctx context.Context, method, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	out := &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		RequestID:  resp.RequestID,
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
		return nil, NewDecodeError(err)
	}
	return out, nil
}
