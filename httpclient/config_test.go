package httpclient

import (
	"testing"
	"time"

	"github.com/kbukum/late-go/version"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", cfg.Timeout)
	}
	if cfg.UserAgent != version.UserAgent() {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.Logger == nil {
		t.Error("expected a no-op logger")
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Timeout: 5 * time.Second, UserAgent: "custom/1"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second || cfg.UserAgent != "custom/1" {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: time.Second, BaseURL: "https://getlate.dev/api"}, false},
		{"no base url", Config{Timeout: time.Second}, false},
		{"zero timeout", Config{BaseURL: "https://getlate.dev/api"}, true},
		{"relative base url", Config{Timeout: time.Second, BaseURL: "/api"}, true},
		{"garbage base url", Config{Timeout: time.Second, BaseURL: "://nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
