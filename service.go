package late

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/late-go/httpclient"
	"github.com/kbukum/late-go/validation"
)

// DeleteResponse is returned by delete operations.
type DeleteResponse struct {
	Message string `json:"message"`
}

// Pagination describes a page of a list result.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// call is one API operation: op names it in errors, route is its path
// template for spans and metrics.
type call struct {
	op    string
	route string
	path  string
	opts  []httpclient.RequestOption
}

func newCall(op, route, path string, opts ...httpclient.RequestOption) call {
	return call{op: op, route: route, path: path, opts: append(opts, httpclient.WithRoute(route))}
}

func (c call) wrap(err error) error {
	return fmt.Errorf("%s: %w", c.op, err)
}

func doGet[T any](ctx context.Context, c *Client, k call) (*T, error) {
	resp, err := httpclient.Get[T](c.http, ctx, k.path, k.opts...)
	if err != nil {
		return nil, k.wrap(err)
	}
	return &resp.Data, nil
}

func doPost[T any](ctx context.Context, c *Client, k call, body any) (*T, error) {
	resp, err := httpclient.Post[T](c.http, ctx, k.path, body, k.opts...)
	if err != nil {
		return nil, k.wrap(err)
	}
	return &resp.Data, nil
}

func doPut[T any](ctx context.Context, c *Client, k call, body any) (*T, error) {
	resp, err := httpclient.Put[T](c.http, ctx, k.path, body, k.opts...)
	if err != nil {
		return nil, k.wrap(err)
	}
	return &resp.Data, nil
}

func doDelete[T any](ctx context.Context, c *Client, k call) (*T, error) {
	resp, err := httpclient.Delete[T](c.http, ctx, k.path, k.opts...)
	if err != nil {
		return nil, k.wrap(err)
	}
	return &resp.Data, nil
}

// checkID rejects an empty path parameter before any request is made.
func checkID(op, field, id string) error {
	if err := validation.Required(field, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// checkBody validates a request payload against its struct tags.
func checkBody(op string, body any) error {
	if err := validation.Validate(body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func seg(id string) string { return url.PathEscape(id) }

// intParam renders a positive int query value; zero is omitted.
func intParam(key string, v int) httpclient.RequestOption {
	if v <= 0 {
		return httpclient.WithQueryParam(key, "")
	}
	return httpclient.WithQueryParam(key, strconv.Itoa(v))
}

// joinIDs renders a comma-separated id list; an empty list is omitted.
func joinIDs(ids []string) string { return strings.Join(ids, ",") }
