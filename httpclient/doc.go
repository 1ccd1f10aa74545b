// Package httpclient is the transport underneath the Late SDK.
//
// A Client performs exactly one HTTP exchange per call: it resolves the path
// against the base URL, merges default and per-request headers, attaches
// bearer authentication, a User-Agent and a fresh X-Request-Id, and reads
// the whole response. Responses outside 2xx are classified with
// apierror.Classify; failures before a response arrives are *Error values
// carrying an ErrorCode.
//
// Every call runs inside an OpenTelemetry client span, is counted by the
// configured observability.ClientMetrics, and is logged at debug level.
//
// Typed helpers decode JSON responses:
//
//	c, _ := httpclient.New(httpclient.Config{
//		BaseURL: "https://getlate.dev/api",
//		Auth:    httpclient.BearerAuth(apiKey),
//	})
//	resp, err := httpclient.Get[PostsPage](c, ctx, "/v1/posts",
//		httpclient.WithQueryParam("status", "scheduled"))
package httpclient
