package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/late-go/version"
)

// Meter returns the SDK meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName, metric.WithInstrumentationVersion(version.Version))
}

// ClientMetrics holds the instruments recorded for Late API calls. A nil
// *ClientMetrics records nothing.
type ClientMetrics struct {
	callTotal       metric.Int64Counter
	callDuration    metric.Float64Histogram
	callActive      metric.Int64UpDownCounter
	apiErrors       metric.Int64Counter
	transportErrors metric.Int64Counter
}

// NewClientMetrics creates the call instruments on meter.
func NewClientMetrics(meter metric.Meter) (*ClientMetrics, error) {
	callTotal, err := meter.Int64Counter("late.client.calls",
		metric.WithDescription("Total number of Late API calls that received a response"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating late.client.calls counter: %w", err)
	}

	callDuration, err := meter.Float64Histogram("late.client.call.duration",
		metric.WithDescription("Duration of Late API calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating late.client.call.duration histogram: %w", err)
	}

	callActive, err := meter.Int64UpDownCounter("late.client.calls.active",
		metric.WithDescription("Number of Late API calls in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating late.client.calls.active gauge: %w", err)
	}

	apiErrors, err := meter.Int64Counter("late.client.api_errors",
		metric.WithDescription("Classified API errors by kind and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating late.client.api_errors counter: %w", err)
	}

	transportErrors, err := meter.Int64Counter("late.client.transport_errors",
		metric.WithDescription("Calls that failed before a response was received"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating late.client.transport_errors counter: %w", err)
	}

	return &ClientMetrics{
		callTotal:       callTotal,
		callDuration:    callDuration,
		callActive:      callActive,
		apiErrors:       apiErrors,
		transportErrors: transportErrors,
	}, nil
}

// CallStarted increments the in-flight call count.
func (m *ClientMetrics) CallStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.callActive.Add(ctx, 1)
}

// CallFinished decrements the in-flight call count.
func (m *ClientMetrics) CallFinished(ctx context.Context) {
	if m == nil {
		return
	}
	m.callActive.Add(ctx, -1)
}

// RecordCall records a call that received an HTTP response.
func (m *ClientMetrics) RecordCall(ctx context.Context, method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("status", strconv.Itoa(status)),
	)
	m.callTotal.Add(ctx, 1, attrs)
	m.callDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
	))
}

// RecordAPIError records a classified API error.
func (m *ClientMetrics) RecordAPIError(ctx context.Context, kind string, status int) {
	if m == nil {
		return
	}
	m.apiErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Int("status", status),
	))
}

// RecordTransportError records a call that failed without a response.
func (m *ClientMetrics) RecordTransportError(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.transportErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
	))
}
