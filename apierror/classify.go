package apierror

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kbukum/late-go/util"
)

// Response is the part of an HTTP response the classifier reads.
type Response struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// StatusText is the reason phrase, e.g. "Not Found". May be empty.
	StatusText string
	// Header holds the response headers. May be nil.
	Header http.Header
}

// FromHTTP describes a standard library response.
func FromHTTP(resp *http.Response) Response {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	return Response{
		StatusCode: resp.StatusCode,
		StatusText: text,
		Header:     resp.Header,
	}
}

// ErrorBody is the JSON error payload of the Late API. Every field is optional.
type ErrorBody struct {
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// DecodeBody parses an error payload. It returns nil for an empty payload, a
// payload that is not JSON, or JSON that is not an object. Fields holding the
// wrong JSON type are left empty.
func DecodeBody(data []byte) *ErrorBody {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil
	}
	body := &ErrorBody{}
	body.Error, _ = raw["error"].(string)
	body.Message, _ = raw["message"].(string)
	body.Code, _ = raw["code"].(string)
	body.Details, _ = raw["details"].(map[string]any)
	return body
}

// Classify turns a failed response into exactly one error variant:
//
//  1. HTTP 429 yields a *RateLimitError populated from the X-RateLimit-* headers.
//  2. HTTP 400 whose body has a non-empty details.fields yields a *ValidationError.
//  3. Anything else yields an *APIError.
//
// body may be nil. Classify never fails.
func Classify(resp Response, body *ErrorBody) Error {
	message := resolveMessage(resp, body)

	var code string
	var details map[string]any
	if body != nil {
		code = body.Code
		details = body.Details
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(message,
			headerInt(resp.Header, HeaderRateLimitLimit),
			headerInt(resp.Header, HeaderRateLimitRemaining),
			headerEpochSeconds(resp.Header, HeaderRateLimitReset),
		)
	}

	if resp.StatusCode == http.StatusBadRequest {
		if fields := fieldsFrom(details); len(fields) > 0 {
			return NewValidationError(message, fields)
		}
	}

	return New(message, resp.StatusCode, code, details)
}

// FromHTTPResponse classifies a standard library response whose body has
// already been read into payload.
func FromHTTPResponse(resp *http.Response, payload []byte) Error {
	return Classify(FromHTTP(resp), DecodeBody(payload))
}

func resolveMessage(resp Response, body *ErrorBody) string {
	if body != nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if resp.StatusText != "" {
		return resp.StatusText
	}
	return DefaultMessage
}

// fieldsFrom extracts details.fields as field name to messages. A single
// string is read as a one-message list; entries of any other shape are skipped.
func fieldsFrom(details map[string]any) map[string][]string {
	raw, ok := details["fields"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	fields := make(map[string][]string, len(raw))
	for name, value := range raw {
		if value == nil {
			continue
		}
		var messages []string
		if err := mapstructure.WeakDecode(value, &messages); err != nil {
			continue
		}
		if messages == nil {
			messages = []string{}
		}
		fields[name] = messages
	}
	return fields
}

// headerValue looks a header up by canonical name first, then by exact and
// case-folded key for maps that were built without canonicalization.
func headerValue(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	if vs := h[name]; len(vs) > 0 {
		return vs[0]
	}
	for k, vs := range h {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

func headerInt(h http.Header, name string) *int {
	v := strings.TrimSpace(headerValue(h, name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return util.Ptr(n)
}

func headerEpochSeconds(h http.Header, name string) *time.Time {
	v := strings.TrimSpace(headerValue(h, name))
	if v == "" {
		return nil
	}
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return util.Ptr(time.Unix(secs, 0))
}
