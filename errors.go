package late

import (
	"net/http"

	"github.com/kbukum/late-go/apierror"
)

// Error variants returned by failed calls.
type (
	APIError        = apierror.APIError
	RateLimitError  = apierror.RateLimitError
	ValidationError = apierror.ValidationError
	ErrorKind       = apierror.Kind
)

// Error kinds.
const (
	KindAPI        = apierror.KindAPI
	KindRateLimit  = apierror.KindRateLimit
	KindValidation = apierror.KindValidation
)

// ParseAPIError classifies a failed response whose body has already been
// read. It never fails.
func ParseAPIError(resp *http.Response, body []byte) error {
	return apierror.FromHTTPResponse(resp, body)
}

// AsAPIError returns the common fields of the API error in err's chain.
func AsAPIError(err error) (*APIError, bool) { return apierror.AsAPIError(err) }

// IsRateLimited reports an HTTP 429 API error.
func IsRateLimited(err error) bool { return apierror.IsRateLimited(err) }

// IsAuthError reports an HTTP 401 API error.
func IsAuthError(err error) bool { return apierror.IsAuthError(err) }

// IsForbidden reports an HTTP 403 API error.
func IsForbidden(err error) bool { return apierror.IsForbidden(err) }

// IsNotFound reports an HTTP 404 API error.
func IsNotFound(err error) bool { return apierror.IsNotFound(err) }

// IsValidationError reports an HTTP 400 API error.
func IsValidationError(err error) bool { return apierror.IsValidationError(err) }

// IsPaymentRequired reports an HTTP 402 API error.
func IsPaymentRequired(err error) bool { return apierror.IsPaymentRequired(err) }
