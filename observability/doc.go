// Package observability provides OpenTelemetry tracing and metrics for Late
// API calls.
//
// Every call made through the SDK transport runs inside a client span and is
// counted by ClientMetrics. Without exporters configured, the global no-op
// providers make both free.
//
// Exporters:
//
//	shutdown, err := observability.Setup(ctx, observability.Config{
//		ServiceName: "scheduler",
//		Endpoint:    "localhost:4318",
//		Insecure:    true,
//	}, log)
//	defer shutdown(context.Background())
//
// Metrics:
//
//	metrics, err := observability.NewClientMetrics(observability.Meter())
//	metrics.RecordCall(ctx, "GET", "/v1/posts", 200, elapsed)
package observability
