package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	late "github.com/kbukum/late-go"
	"github.com/kbukum/late-go/validation"
)

// isolatedFS is the real filesystem with the user config directory moved
// into the test's temp dir.
type isolatedFS struct {
	OSFileSystem
	configDir string
}

func (f *isolatedFS) UserConfigDir() (string, error) { return f.configDir, nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, vars := range envBindings {
		for _, name := range vars {
			t.Setenv(name, "")
		}
	}
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
api:
  api_key: sk_from_file
  base_url: http://localhost:8080/api
  timeout: 15s
  default_headers:
    X-Team: growth
log:
  level: debug
  format: json
telemetry:
  endpoint: localhost:4318
  sample_rate: 0.25
`)

	var s Settings
	if err := Load("late", &s, WithConfigFile(path), WithFileSystem(&isolatedFS{configDir: dir})); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.API.APIKey != "sk_from_file" || s.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("unexpected api settings %+v", s.API)
	}
	if s.API.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", s.API.Timeout)
	}
	if got := s.API.DefaultHeaders["x-team"]; got != "growth" {
		t.Errorf("default headers = %v", s.API.DefaultHeaders)
	}
	if s.Log.Level != "debug" || s.Log.Format != "json" {
		t.Errorf("unexpected log settings %+v", s.Log)
	}
	if !s.Telemetry.Enabled() || s.Telemetry.SampleRate != 0.25 {
		t.Errorf("unexpected telemetry settings %+v", s.Telemetry)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "api:\n  api_key: sk_from_file\nlog:\n  level: warn\n")
	t.Setenv("LATE_API_KEY", "sk_from_env")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LATE_TIMEOUT", "5s")

	var s Settings
	if err := Load("late", &s, WithConfigFile(path), WithFileSystem(&isolatedFS{configDir: dir})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.API.APIKey != "sk_from_env" {
		t.Errorf("api key = %q", s.API.APIKey)
	}
	if s.Log.Level != "error" {
		t.Errorf("log level = %q", s.Log.Level)
	}
	if s.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", s.API.Timeout)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "LATE_API_KEY=sk_from_dotenv\nLATE_BASE_URL=http://127.0.0.1:9000/api\n")
	t.Cleanup(func() {
		os.Unsetenv("LATE_API_KEY")
		os.Unsetenv("LATE_BASE_URL")
	})
	// godotenv never overrides variables that are already set
	os.Unsetenv("LATE_API_KEY")
	os.Unsetenv("LATE_BASE_URL")

	var s Settings
	if err := Load("late", &s, WithEnvFile(envPath), WithFileSystem(&isolatedFS{configDir: dir})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.API.APIKey != "sk_from_dotenv" || s.API.BaseURL != "http://127.0.0.1:9000/api" {
		t.Errorf("unexpected api settings %+v", s.API)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	var s Settings
	if err := Load("late", &s, WithFileSystem(&isolatedFS{configDir: dir})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.API.BaseURL != late.DefaultBaseURL || s.API.Timeout != late.DefaultTimeout {
		t.Errorf("unexpected api defaults %+v", s.API)
	}
	if s.Log.Level != "info" {
		t.Errorf("log level = %q", s.Log.Level)
	}
	if s.Telemetry.Enabled() {
		t.Error("telemetry must stay disabled without an endpoint")
	}
	if s.Telemetry.SampleRate != 1 || s.Telemetry.ServiceName != "late-go" {
		t.Errorf("unexpected telemetry defaults %+v", s.Telemetry)
	}
}

func TestLoad_UserConfigDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "late/config.yml", "api:\n  api_key: sk_user_dir\n")

	var s Settings
	if err := Load("late", &s, WithFileSystem(&isolatedFS{configDir: dir})); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.API.APIKey != "sk_user_dir" {
		t.Errorf("api key = %q", s.API.APIKey)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	fs := &isolatedFS{configDir: dir}

	var s Settings
	err := Load("late", &s, WithConfigFile(filepath.Join(dir, "missing.yml")), WithFileSystem(fs))
	if !errors.Is(err, ErrConfigFileNotFound) {
		t.Errorf("expected ErrConfigFileNotFound, got %v", err)
	}

	bad := writeFile(t, dir, "bad.yml", "api: [unclosed\n")
	if err := Load("late", &s, WithConfigFile(bad), WithFileSystem(fs)); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"valid", func(*Settings) {}, ""},
		{"bad base url", func(s *Settings) { s.API.BaseURL = "getlate" }, "api.base_url"},
		{"negative timeout", func(s *Settings) { s.API.Timeout = -time.Second }, "api.timeout"},
		{"sample rate above one", func(s *Settings) { s.Telemetry.SampleRate = 2 }, "telemetry.sample_rate"},
		{"bad log level", func(s *Settings) { s.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Settings
			s.ApplyDefaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}

	var s Settings
	s.ApplyDefaults()
	s.API.BaseURL = "::"
	var verr *validation.Error
	if !errors.As(s.Validate(), &verr) {
		t.Error("expected a *validation.Error in the chain")
	}
}

func TestSettings_ClientOptions(t *testing.T) {
	s := Settings{API: APISettings{
		APIKey:         "sk_test",
		BaseURL:        "http://localhost/api",
		Timeout:        time.Second,
		DefaultHeaders: map[string]string{"X-A": "1"},
	}}
	opts := s.ClientOptions()
	if opts.APIKey != "sk_test" || opts.BaseURL != "http://localhost/api" || opts.Timeout != time.Second {
		t.Errorf("unexpected options %+v", opts)
	}
	opts.DefaultHeaders["X-A"] = "2"
	if s.API.DefaultHeaders["X-A"] != "1" {
		t.Error("ClientOptions must copy the headers")
	}

	if _, err := late.New((&Settings{}).ClientOptions()); !errors.Is(err, late.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey for empty settings, got %v", err)
	}
}

func TestResolver(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config.yml":                    true,
		"./late.yml":                      true,
		".env":                            true,
		"/home/u/.config/late/config.yml": true,
	}}
	r := &Resolver{FileSystem: fs}

	files := r.ResolveFiles("late", LoaderConfig{})
	if files.ConfigFile != "./late.yml" {
		t.Errorf("config file = %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("env file = %q", files.EnvFile)
	}

	files = r.ResolveFiles("late", LoaderConfig{ConfigFile: "/etc/late.yml", EnvFile: "/etc/late.env"})
	if files.ConfigFile != "/etc/late.yml" || files.EnvFile != "/etc/late.env" {
		t.Errorf("explicit paths must win: %+v", files)
	}

	fs.files = map[string]bool{"/home/u/.config/late/config.yml": true}
	if got := r.ResolveFiles("late", LoaderConfig{}).ConfigFile; got != "/home/u/.config/late/config.yml" {
		t.Errorf("config file = %q", got)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool        { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error      { return nil }
func (m *mockFS) UserConfigDir() (string, error) { return "/home/u/.config", nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config %+v", lc)
	}
}
