package httpclient

import (
	"net/http"
	"testing"
)

func TestAuthConfig_Apply(t *testing.T) {
	tests := []struct {
		name       string
		auth       *AuthConfig
		header     string
		want       string
		wantScheme string
	}{
		{"bearer", BearerAuth("sk_live_123"), "Authorization", "Bearer sk_live_123", "bearer"},
		{"named header", HeaderAuth("x-late-key", "k1"), "X-Late-Key", "k1", "header"},
		{"request hook", RequestAuth(func(r *http.Request) { r.Header.Set("X-Custom", "yes") }), "X-Custom", "yes", "custom"},
		{"none", NoAuth(), "Authorization", "", "none"},
		{"nil", nil, "Authorization", "", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "https://getlate.dev/api/v1/posts", nil)
			tt.auth.apply(req)
			if got := req.Header.Get(tt.header); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
			if got := tt.auth.Scheme(); got != tt.wantScheme {
				t.Errorf("Scheme() = %q, want %q", got, tt.wantScheme)
			}
		})
	}
}
