package latetest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// DefaultAPIKey is the key the server accepts unless WithAPIKey is used.
const DefaultAPIKey = "sk_test_latetest"

// Responder writes the response for a matched route.
type Responder func(c *gin.Context)

// RecordedRequest is a request as the server received it.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	// ContentLength is -1 when the body arrived chunked.
	ContentLength    int64
	TransferEncoding []string
}

type route struct {
	method  string
	pattern []string
	respond Responder
}

type quota struct {
	limit  int
	used   int
	window time.Duration
	reset  time.Time
}

// Server is a scripted fake of the Late API.
type Server struct {
	ts     *httptest.Server
	engine *gin.Engine
	apiKey string

	mu       sync.Mutex
	routes   []route
	requests []RecordedRequest
	quota    *quota
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey sets the bearer key the server accepts. An empty key disables
// authentication.
func WithAPIKey(key string) Option {
	return func(s *Server) { s.apiKey = key }
}

// WithQuota meters limit requests per window and answers 429 once the quota
// is spent, like the hosted API.
func WithQuota(limit int, window time.Duration) Option {
	return func(s *Server) {
		s.quota = &quota{limit: limit, window: window, reset: time.Now().Add(window)}
	}
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()
	s := &Server{apiKey: DefaultAPIKey}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestID(), s.record(), s.authenticate(), s.meter())
	s.engine.NoRoute(s.dispatch)

	s.ts = httptest.NewServer(s.engine)
	t.Cleanup(s.Close)
	return s
}

// URL returns the API base URL, e.g. "http://127.0.0.1:PORT/api".
func (s *Server) URL() string { return s.ts.URL + "/api" }

// APIKey returns the accepted bearer key.
func (s *Server) APIKey() string { return s.apiKey }

// Close shuts the server down.
func (s *Server) Close() { s.ts.Close() }

// Handle scripts the response for method and path. Path segments written as
// {name} match any value and are available through Param. Later
// registrations for the same route win.
func (s *Server) Handle(method, path string, r Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append([]route{{method: method, pattern: split(path), respond: r}}, s.routes...)
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false if none arrived.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Param returns a {name} path parameter of the matched route.
func Param(c *gin.Context, name string) string {
	return c.GetString("param." + name)
}

// --- middleware ---

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-Request-Id"); id != "" {
			c.Header("X-Request-Id", id)
		}
		c.Next()
	}
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: c.Request.Method,
			Path:   apiPath(c.Request.URL.Path),
			Query:  c.Request.URL.Query(),
			Header: c.Request.Header.Clone(),
			Body:   body,

			ContentLength:    c.Request.ContentLength,
			TransferEncoding: c.Request.TransferEncoding,
		})
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.apiKey == "" {
			c.Next()
			return
		}
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token != s.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API key",
				"code":  "invalid_api_key",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) meter() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		q := s.quota
		if q == nil {
			s.mu.Unlock()
			c.Next()
			return
		}
		now := time.Now()
		if !now.Before(q.reset) {
			q.used = 0
			q.reset = now.Add(q.window)
		}
		q.used++
		limit, remaining, reset := q.limit, max(q.limit-q.used, 0), q.reset
		exceeded := q.used > q.limit
		s.mu.Unlock()

		SetRateLimitHeaders(c, limit, remaining, reset)
		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) dispatch(c *gin.Context) {
	segments := split(apiPath(c.Request.URL.Path))

	s.mu.Lock()
	var match *route
	for i := range s.routes {
		r := &s.routes[i]
		if r.method == c.Request.Method && matches(r.pattern, segments, c) {
			match = r
			break
		}
	}
	s.mu.Unlock()

	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "code": "not_found"})
		return
	}
	match.respond(c)
}

// apiPath strips the "/api" prefix the base URL carries.
func apiPath(p string) string {
	if rest, ok := strings.CutPrefix(p, "/api"); ok && (rest == "" || rest[0] == '/') {
		return rest
	}
	return p
}

func split(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func matches(pattern, segments []string, c *gin.Context) bool {
	if len(pattern) != len(segments) {
		return false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			params[p[1:len(p)-1]] = segments[i]
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	for k, v := range params {
		c.Set("param."+k, v)
	}
	return true
}
