// Package latetest provides a fake Late API server for tests.
//
// The server is a gin engine behind an httptest.Server. Routes are scripted
// per test; the server enforces bearer authentication, echoes X-Request-Id,
// optionally meters a rate-limit quota with X-RateLimit-* headers, and
// records every request it receives.
//
//	srv := latetest.NewServer(t)
//	srv.Handle(http.MethodGet, "/v1/posts/{postId}", latetest.JSON(http.StatusOK, gin.H{"_id": "p1"}))
//	client, _ := late.New(late.Options{APIKey: srv.APIKey(), BaseURL: srv.URL()})
package latetest
