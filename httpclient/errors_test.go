package httpclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kbukum/late-go/apierror"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeCanceled, "canceled"},
		{ErrCodeRequest, "request"},
		{ErrCodeDecode, "decode"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	e := NewConnectionError(inner)
	if got, want := e.Error(), "httpclient: connection: dial tcp: connection refused"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(e, inner) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestIsHelpers(t *testing.T) {
	timeout := fmt.Errorf("posts.list: %w", NewTimeoutError(errors.New("deadline")))
	conn := NewConnectionError(errors.New("refused"))
	canceled := NewCanceledError(errors.New("canceled"))
	req := NewRequestError("encode body", nil)

	if !IsTimeout(timeout) || IsTimeout(conn) {
		t.Error("IsTimeout mismatch")
	}
	if !IsConnection(conn) || IsConnection(timeout) {
		t.Error("IsConnection mismatch")
	}
	if !IsCanceled(canceled) || IsCanceled(conn) {
		t.Error("IsCanceled mismatch")
	}
	if IsTimeout(errors.New("plain")) || IsConnection(nil) {
		t.Error("plain errors match nothing")
	}
	if IsRetryable(req) || IsRetryable(canceled) {
		t.Error("request and cancellation errors are not retryable")
	}
}

func TestIsRetryable_APIErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", apierror.NewRateLimitError("slow down", nil, nil, nil), true},
		{"server error", apierror.New("boom", 500, "", nil), true},
		{"unavailable", apierror.New("down", 503, "", nil), true},
		{"not found", apierror.New("missing", 404, "", nil), false},
		{"validation", apierror.NewValidationError("bad", map[string][]string{"content": {"required"}}), false},
		{"plain", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(fmt.Errorf("wrapped: %w", tt.err)); got != tt.want {
				t.Errorf("IsRetryable = %v, want %v", got, tt.want)
			}
		})
	}
}
