package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kbukum/late-go/apierror"
	"github.com/kbukum/late-go/httpclient"
	"github.com/kbukum/late-go/validation"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitAPI        = 1
	ExitConfig     = 2
	ExitAuth       = 3
	ExitValidation = 4
	ExitRateLimit  = 5
	ExitNotFound   = 6
)

// configError marks failures to load settings or build the client.
type configError struct {
	err error
}

func (e *configError) Error() string { return "configuration: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var cfgErr *configError
	var verr *validation.Error
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cfgErr):
		return ExitConfig
	case apierror.IsAuthError(err):
		return ExitAuth
	case apierror.IsValidationError(err), errors.As(err, &verr):
		return ExitValidation
	case apierror.IsRateLimited(err):
		return ExitRateLimit
	case apierror.IsNotFound(err):
		return ExitNotFound
	default:
		return ExitAPI
	}
}

// describeError renders err with its classification for the terminal.
func describeError(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v\n", err)

	if base, ok := apierror.AsAPIError(err); ok {
		kind, _ := apierror.KindOf(err)
		fmt.Fprintf(&b, "  kind:   %s\n  status: %d\n", kind, base.StatusCode)
		if base.Code != "" {
			fmt.Fprintf(&b, "  code:   %s\n", base.Code)
		}
	}

	var ve *apierror.ValidationError
	if errors.As(err, &ve) {
		writeFields(&b, ve.Fields)
	}
	var local *validation.Error
	if errors.As(err, &local) {
		writeFields(&b, local.Fields)
	}

	var rl *apierror.RateLimitError
	if errors.As(err, &rl) {
		if rl.Limit != nil && rl.Remaining != nil {
			fmt.Fprintf(&b, "  quota:  %d of %d remaining\n", *rl.Remaining, *rl.Limit)
		}
		if secs, ok := rl.SecondsUntilReset(); ok {
			fmt.Fprintf(&b, "  retry in %ds\n", secs)
		}
	}

	var te *httpclient.Error
	if errors.As(err, &te) && te.Retryable {
		b.WriteString("  the request may be retried\n")
	}
	return b.String()
}

func writeFields(b *strings.Builder, fields map[string][]string) {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		for _, msg := range fields[name] {
			fmt.Fprintf(b, "  %s: %s\n", name, msg)
		}
	}
}
