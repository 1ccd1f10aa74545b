package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kbukum/late-go/apierror"
)

// ErrorCode says why a call produced no usable response.
type ErrorCode int

const (
	ErrCodeTimeout    ErrorCode = iota // deadline or client timeout hit
	ErrCodeConnection                  // dial, DNS, TLS or reset
	ErrCodeCanceled                    // caller canceled ctx
	ErrCodeRequest                     // request could not be built
	ErrCodeDecode                      // 2xx body was not the expected JSON
)

var codeNames = [...]string{
	ErrCodeTimeout:    "timeout",
	ErrCodeConnection: "connection",
	ErrCodeCanceled:   "canceled",
	ErrCodeRequest:    "request",
	ErrCodeDecode:     "decode",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// retryable reports whether the same call may succeed when sent again.
func (c ErrorCode) retryable() bool {
	return c == ErrCodeTimeout || c == ErrCodeConnection
}

// Error is a failure on the client side of the wire. Anything the Late API
// answered with a non-2xx status is an apierror value instead.
type Error struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Err       error
}

func newError(code ErrorCode, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Retryable: code.retryable(), Err: err}
}

func (e *Error) Error() string { return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message) }

func (e *Error) Unwrap() error { return e.Err }

func NewTimeoutError(err error) *Error { return newError(ErrCodeTimeout, err.Error(), err) }

func NewConnectionError(err error) *Error { return newError(ErrCodeConnection, err.Error(), err) }

func NewCanceledError(err error) *Error { return newError(ErrCodeCanceled, err.Error(), err) }

func NewRequestError(msg string, err error) *Error { return newError(ErrCodeRequest, msg, err) }

func NewDecodeError(err error) *Error {
	return newError(ErrCodeDecode, "decode response: "+err.Error(), err)
}

func codeOf(err error) (ErrorCode, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Code, true
}

// IsTimeout reports a timeout anywhere in err's chain.
func IsTimeout(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeTimeout
}

// IsConnection reports a connection failure anywhere in err's chain.
func IsConnection(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeConnection
}

// IsCanceled reports a canceled call anywhere in err's chain.
func IsCanceled(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeCanceled
}

// IsRetryable reports whether sending the call again could succeed. That
// covers timeouts, connection failures, HTTP 429 and HTTP 5xx. Nothing in
// this module retries on its own.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return apierror.IsRateLimited(err) || apierror.StatusCode(err) >= http.StatusInternalServerError
}
