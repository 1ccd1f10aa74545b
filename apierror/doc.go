// Package apierror classifies failed Late API responses into typed errors.
//
// Every non-2xx response becomes exactly one of three variants:
//
//   - *RateLimitError for HTTP 429, carrying the X-RateLimit-* quota headers
//   - *ValidationError for HTTP 400 bodies that list field violations
//   - *APIError for everything else
//
// All variants share the same status-code predicates:
//
//	err := apierror.Classify(resp, apierror.DecodeBody(payload))
//	if apierror.IsRateLimited(err) {
//	    var rl *apierror.RateLimitError
//	    if errors.As(err, &rl) {
//	        if secs, ok := rl.SecondsUntilReset(); ok {
//	            // wait secs before the next call
//	        }
//	    }
//	}
//
// Classification is a pure function of its inputs: it performs no I/O, does
// not log, and never fails. Missing or malformed headers and bodies degrade
// to absent optional fields.
package apierror
