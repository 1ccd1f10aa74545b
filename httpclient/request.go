package httpclient

import "net/http"

// HeaderRequestID carries the id generated for each call. A caller-supplied
// value is kept.
const HeaderRequestID = "X-Request-Id"

// Request is one call to the Late API or to a presigned storage URL.
type Request struct {
	Method string
	// Path is joined to Config.BaseURL unless it is already absolute.
	Path string
	// Route is the path template for spans and metrics. Path is used when empty.
	Route   string
	Headers map[string]string
	Query   map[string]string
	// Body may be an io.Reader, []byte, string, *MultipartBody, or any value
	// that encodes to JSON.
	Body any
	// ContentLength is sent when positive. Without it a streamed io.Reader
	// body goes out chunked.
	ContentLength int64
	// Auth replaces Config.Auth for this call when set.
	Auth *AuthConfig
}

func (r *Request) route() string {
	if r.Route == "" {
		return r.Path
	}
	return r.Route
}

// Response is a received answer, successful or not.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool { return r.StatusCode/100 == 2 }

// IsError reports a 4xx or 5xx status.
func (r *Response) IsError() bool { return r.StatusCode >= http.StatusBadRequest }
