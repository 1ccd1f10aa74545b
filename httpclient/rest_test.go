package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbukum/late-go/apierror"
)

type testPost struct {
	ID      string `json:"_id"`
	Content string `json:"content"`
}

func newEchoServer(t *testing.T, wantMethod string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != wantMethod {
			t.Errorf("expected %s, got %s", wantMethod, r.Method)
		}
		post := testPost{ID: "p1"}
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&post)
		}
		json.NewEncoder(w).Encode(post)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTypedHelpers(t *testing.T) {
	body := map[string]string{"content": "hello"}
	tests := []struct {
		method string
		call   func(c *Client) (*TypedResponse[testPost], error)
		want   string
	}{
		{http.MethodGet, func(c *Client) (*TypedResponse[testPost], error) {
			return Get[testPost](c, context.Background(), "/v1/posts/p1")
		}, ""},
		{http.MethodPost, func(c *Client) (*TypedResponse[testPost], error) {
			return Post[testPost](c, context.Background(), "/v1/posts", body)
		}, "hello"},
		{http.MethodPut, func(c *Client) (*TypedResponse[testPost], error) {
			return Put[testPost](c, context.Background(), "/v1/posts/p1", body)
		}, "hello"},
		{http.MethodPatch, func(c *Client) (*TypedResponse[testPost], error) {
			return Patch[testPost](c, context.Background(), "/v1/posts/p1", body)
		}, "hello"},
		{http.MethodDelete, func(c *Client) (*TypedResponse[testPost], error) {
			return Delete[testPost](c, context.Background(), "/v1/posts/p1")
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			srv := newEchoServer(t, tt.method)
			c, err := New(Config{BaseURL: srv.URL})
			if err != nil {
				t.Fatal(err)
			}
			resp, err := tt.call(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected 200, got %d", resp.StatusCode)
			}
			if resp.Data.ID != "p1" || resp.Data.Content != tt.want {
				t.Errorf("unexpected data %+v", resp.Data)
			}
			if resp.RequestID == "" {
				t.Error("expected a request id")
			}
		})
	}
}

func TestGet_WithOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "failed" {
			t.Errorf("expected status=failed, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Has("platform") {
			t.Error("empty query values must be skipped")
		}
		if r.Header.Get("X-Custom") != "yes" {
			t.Error("expected custom header")
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := Get[map[string]any](c, context.Background(), "/v1/posts",
		WithQueryParam("status", "failed"),
		WithQueryParam("platform", ""),
		WithHeader("X-Custom", "yes"),
		WithRoute("/v1/posts"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_WithAuthOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer override" {
			t.Errorf("expected override token, got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL, Auth: BearerAuth("default")})
	if _, err := Get[map[string]any](c, context.Background(), "/", WithRequestAuth(BearerAuth("override"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Post not found"}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := Get[testPost](c, context.Background(), "/v1/posts/missing")
	if resp != nil {
		t.Error("expected no typed response on error")
	}
	if !apierror.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGet_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := Get[testPost](c, context.Background(), "/v1/posts/p1")
	var e *Error
	if !errors.As(err, &e) || e.Code != ErrCodeDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestGet_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := Delete[testPost](c, context.Background(), "/v1/posts/p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent || resp.Data.ID != "" {
		t.Errorf("unexpected response %+v", resp)
	}
}
