package apierror

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Error is implemented by every variant Classify produces.
type Error interface {
	error
	// Kind reports which variant the value is.
	Kind() Kind
	base() *APIError
}

// APIError is a failed Late API call.
type APIError struct {
	// Message is the human-readable failure description.
	Message string `json:"message"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status_code"`
	// Code is the machine-readable identifier, empty when the API sent none.
	Code string `json:"code,omitempty"`
	// Details holds auxiliary fields from the error body, nil when absent.
	Details map[string]any `json:"details,omitempty"`
}

// New creates a generic API error.
func New(message string, statusCode int, code string, details map[string]any) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
		Details:    details,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("late: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("late: HTTP %d: %s", e.StatusCode, e.Message)
}

// Kind returns KindAPI.
func (e *APIError) Kind() Kind { return KindAPI }

func (e *APIError) base() *APIError { return e }

// IsRateLimited reports an HTTP 429.
func (e *APIError) IsRateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

// IsAuthError reports an HTTP 401.
func (e *APIError) IsAuthError() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports an HTTP 403.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsNotFound reports an HTTP 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsValidationError reports an HTTP 400, whether or not field details were sent.
func (e *APIError) IsValidationError() bool { return e.StatusCode == http.StatusBadRequest }

// IsPaymentRequired reports an HTTP 402.
func (e *APIError) IsPaymentRequired() bool { return e.StatusCode == http.StatusPaymentRequired }

// RateLimitError is an HTTP 429 carrying the caller's quota window.
type RateLimitError struct {
	APIError
	// Limit is the maximum number of requests in the window.
	Limit *int `json:"limit,omitempty"`
	// Remaining is the number of requests left in the window.
	Remaining *int `json:"remaining,omitempty"`
	// ResetAt is when the window resets.
	ResetAt *time.Time `json:"reset_at,omitempty"`
}

// NewRateLimitError creates a rate-limit error. Nil arguments stay absent.
func NewRateLimitError(message string, limit, remaining *int, resetAt *time.Time) *RateLimitError {
	return &RateLimitError{
		APIError: APIError{
			Message:    message,
			StatusCode: http.StatusTooManyRequests,
			Code:       CodeRateLimitExceeded,
		},
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

// Kind returns KindRateLimit.
func (e *RateLimitError) Kind() Kind { return KindRateLimit }

// SecondsUntilReset returns the whole seconds left until ResetAt, rounded up
// and never negative. ok is false when the API did not report a reset time.
func (e *RateLimitError) SecondsUntilReset() (seconds int, ok bool) {
	return e.SecondsUntilResetAt(time.Now())
}

// SecondsUntilResetAt is SecondsUntilReset evaluated at now.
func (e *RateLimitError) SecondsUntilResetAt(now time.Time) (seconds int, ok bool) {
	if e.ResetAt == nil {
		return 0, false
	}
	ms := e.ResetAt.UnixMilli() - now.UnixMilli()
	if ms <= 0 {
		return 0, true
	}
	return int(math.Ceil(float64(ms) / 1000)), true
}

// ValidationError is an HTTP 400 listing violations per request field.
type ValidationError struct {
	APIError
	// Fields maps a field name to its violation messages, in API order.
	Fields map[string][]string `json:"fields,omitempty"`
}

// NewValidationError creates a validation error. The fields are also
// exposed under Details["fields"].
func NewValidationError(message string, fields map[string][]string) *ValidationError {
	return &ValidationError{
		APIError: APIError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
			Code:       CodeValidationError,
			Details:    map[string]any{"fields": fields},
		},
		Fields: fields,
	}
}

// Kind returns KindValidation.
func (e *ValidationError) Kind() Kind { return KindValidation }

// --- helpers over error chains ---

// AsAPIError returns the common fields of any variant found in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.base(), true
	}
	return nil, false
}

// KindOf returns the variant of the first API error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return 0, false
}

// StatusCode returns the HTTP status of the API error in err's chain, or 0.
func StatusCode(err error) int {
	if e, ok := AsAPIError(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsRateLimited checks if err is an API error with HTTP 429.
func IsRateLimited(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsRateLimited()
}

// IsAuthError checks if err is an API error with HTTP 401.
func IsAuthError(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsAuthError()
}

// IsForbidden checks if err is an API error with HTTP 403.
func IsForbidden(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsForbidden()
}

// IsNotFound checks if err is an API error with HTTP 404.
func IsNotFound(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsNotFound()
}

// IsValidationError checks if err is an API error with HTTP 400.
func IsValidationError(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsValidationError()
}

// IsPaymentRequired checks if err is an API error with HTTP 402.
func IsPaymentRequired(err error) bool {
	e, ok := AsAPIError(err)
	return ok && e.IsPaymentRequired()
}
