package apierror

// Machine-readable codes the SDK assigns itself. Codes reported by the API
// in the error body are passed through unchanged on the generic variant.
const (
	// CodeRateLimitExceeded is the code of every RateLimitError.
	CodeRateLimitExceeded = "rate_limit_exceeded"
	// CodeValidationError is the code of every ValidationError.
	CodeValidationError = "validation_error"
	// CodeMissingAPIKey marks a client constructed without credentials.
	CodeMissingAPIKey = "missing_api_key"
)

// Response headers carrying the caller's rate-limit window.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// DefaultMessage is used when neither the body nor the status line
// describes the failure.
const DefaultMessage = "Unknown error"

// Kind tags the error variant produced by Classify.
type Kind int

const (
	// KindAPI is the generic HTTP failure.
	KindAPI Kind = iota
	// KindRateLimit is an HTTP 429 with quota metadata.
	KindRateLimit
	// KindValidation is an HTTP 400 with field-level violations.
	KindValidation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api_error"
	case KindRateLimit:
		return "rate_limit"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}
