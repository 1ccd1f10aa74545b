package latetest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func get(t *testing.T, srv *Server, path, key string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, srv.URL()+path, nil)
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	return m
}

func TestServer_RoutesAndParams(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodGet, "/v1/posts/{postId}", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"_id": Param(c, "postId")})
	})

	resp := get(t, srv, "/v1/posts/p42", srv.APIKey())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := decode(t, resp)["_id"]; got != "p42" {
		t.Errorf("expected _id p42, got %v", got)
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := NewServer(t)
	resp := get(t, srv, "/v1/nothing", srv.APIKey())
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_LaterRegistrationWins(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodGet, "/v1/usage-stats", JSON(http.StatusOK, gin.H{"plan": "free"}))
	srv.Handle(http.MethodGet, "/v1/usage-stats", JSON(http.StatusOK, gin.H{"plan": "pro"}))

	if got := decode(t, get(t, srv, "/v1/usage-stats", srv.APIKey()))["plan"]; got != "pro" {
		t.Errorf("expected pro, got %v", got)
	}
}

func TestServer_Authentication(t *testing.T) {
	srv := NewServer(t, WithAPIKey("sk_right"))
	srv.Handle(http.MethodGet, "/v1/accounts", JSON(http.StatusOK, gin.H{}))

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "sk_wrong", http.StatusUnauthorized},
		{"right", "sk_right", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := get(t, srv, "/v1/accounts", tt.key).StatusCode; got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServer_Quota(t *testing.T) {
	srv := NewServer(t, WithQuota(2, time.Minute))
	srv.Handle(http.MethodGet, "/v1/posts", JSON(http.StatusOK, gin.H{}))

	for i, want := range []struct {
		status    int
		remaining string
	}{{200, "1"}, {200, "0"}, {429, "0"}} {
		resp := get(t, srv, "/v1/posts", srv.APIKey())
		if resp.StatusCode != want.status {
			t.Errorf("call %d: status = %d, want %d", i, resp.StatusCode, want.status)
		}
		if got := resp.Header.Get("X-RateLimit-Remaining"); got != want.remaining {
			t.Errorf("call %d: remaining = %q, want %q", i, got, want.remaining)
		}
		if resp.Header.Get("X-RateLimit-Limit") != "2" || resp.Header.Get("X-RateLimit-Reset") == "" {
			t.Errorf("call %d: missing quota headers", i)
		}
	}
}

func TestServer_RecordsRequests(t *testing.T) {
	srv := NewServer(t)
	srv.Handle(http.MethodPost, "/v1/posts", JSON(http.StatusCreated, gin.H{}))

	req, _ := http.NewRequest(http.MethodPost, srv.URL()+"/v1/posts?dryRun=true", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Authorization", "Bearer "+srv.APIKey())
	req.Header.Set("X-Request-Id", "req-7")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.Header.Get("X-Request-Id") != "req-7" {
		t.Error("expected the request id echoed")
	}
	last, ok := srv.LastRequest()
	if !ok {
		t.Fatal("expected a recorded request")
	}
	if last.Method != http.MethodPost || last.Path != "/v1/posts" {
		t.Errorf("unexpected request %s %s", last.Method, last.Path)
	}
	if last.Query.Get("dryRun") != "true" || string(last.Body) != `{"content":"hi"}` {
		t.Errorf("unexpected query/body %v %s", last.Query, last.Body)
	}
	if len(srv.Requests()) != 1 {
		t.Errorf("expected 1 request, got %d", len(srv.Requests()))
	}
}

func TestResponders(t *testing.T) {
	reset := time.Now().Add(time.Minute)
	srv := NewServer(t, WithAPIKey(""))
	srv.Handle(http.MethodGet, "/raw", Raw(http.StatusBadGateway, "text/html", "<html>oops</html>"))
	srv.Handle(http.MethodGet, "/error", Error(http.StatusNotFound, "Post not found", "post_not_found"))
	srv.Handle(http.MethodGet, "/validation", ValidationFailed("Validation failed", map[string][]string{"content": {"required"}}))
	srv.Handle(http.MethodGet, "/limited", RateLimited(100, 0, reset))
	srv.Handle(http.MethodGet, "/empty", NoContent())
	srv.Handle(http.MethodGet, "/seq", Sequence(Error(http.StatusServiceUnavailable, "down", ""), JSON(http.StatusOK, gin.H{})))

	if resp := get(t, srv, "/raw", ""); resp.StatusCode != http.StatusBadGateway {
		t.Errorf("raw: status %d", resp.StatusCode)
	}
	if m := decode(t, get(t, srv, "/error", "")); m["error"] != "Post not found" || m["code"] != "post_not_found" {
		t.Errorf("error: body %v", m)
	}
	m := decode(t, get(t, srv, "/validation", ""))
	fields := m["details"].(map[string]any)["fields"].(map[string]any)
	if _, ok := fields["content"]; !ok {
		t.Errorf("validation: body %v", m)
	}
	limited := get(t, srv, "/limited", "")
	if limited.StatusCode != http.StatusTooManyRequests || limited.Header.Get("X-RateLimit-Limit") != "100" {
		t.Errorf("limited: %d %v", limited.StatusCode, limited.Header)
	}
	if resp := get(t, srv, "/empty", ""); resp.StatusCode != http.StatusNoContent {
		t.Errorf("empty: status %d", resp.StatusCode)
	}
	for i, want := range []int{503, 200, 200} {
		if got := get(t, srv, "/seq", "").StatusCode; got != want {
			t.Errorf("seq call %d: status %d, want %d", i, got, want)
		}
	}
}
