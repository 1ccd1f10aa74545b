package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/late-go/apierror"
	"github.com/kbukum/late-go/version"
)

// InstrumentationName identifies the SDK's tracer and meter.
const InstrumentationName = "github.com/kbukum/late-go"

// Attribute keys set on call spans.
const (
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrURLPath        = "url.path"
	AttrServerAddress  = "server.address"
	AttrRequestID      = "late.request_id"
	AttrErrorKind      = "late.error.kind"
	AttrErrorCode      = "late.error.code"
	AttrRateRemaining  = "late.ratelimit.remaining"
)

// Tracer returns the SDK tracer from tp, or from the global provider when tp
// is nil.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(InstrumentationName, trace.WithInstrumentationVersion(version.Version))
}

// Call describes one outgoing API call.
type Call struct {
	Method    string
	Path      string
	Host      string
	RequestID string
}

// StartCallSpan starts a client span named "METHOD /path" for c.
func StartCallSpan(ctx context.Context, tracer trace.Tracer, c Call) (context.Context, trace.Span) {
	return tracer.Start(ctx, c.Method+" "+c.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrHTTPMethod, c.Method),
			attribute.String(AttrURLPath, c.Path),
			attribute.String(AttrServerAddress, c.Host),
			attribute.String(AttrRequestID, c.RequestID),
		),
	)
}

// EndCallSpan records the outcome of a call on span and ends it. status is
// 0 when no response was received.
func EndCallSpan(span trace.Span, status int, err error) {
	defer span.End()
	if status > 0 {
		span.SetAttributes(attribute.Int(AttrHTTPStatusCode, status))
	}
	if err == nil {
		return
	}

	if kind, ok := apierror.KindOf(err); ok {
		attrs := []attribute.KeyValue{attribute.String(AttrErrorKind, kind.String())}
		if base, _ := apierror.AsAPIError(err); base.Code != "" {
			attrs = append(attrs, attribute.String(AttrErrorCode, base.Code))
		}
		var rl *apierror.RateLimitError
		if errors.As(err, &rl) && rl.Remaining != nil {
			attrs = append(attrs, attribute.Int(AttrRateRemaining, *rl.Remaining))
		}
		span.SetAttributes(attrs...)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

