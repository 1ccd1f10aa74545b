package config

import (
	"fmt"
	"maps"
	"time"

	late "github.com/kbukum/late-go"
	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
	"github.com/kbukum/late-go/validation"
	"github.com/kbukum/late-go/version"
)

// Settings is the full configuration of a Late client program.
type Settings struct {
	API       APISettings          `yaml:"api" mapstructure:"api"`
	Log       logger.Config        `yaml:"log" mapstructure:"log"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// APISettings configures the API client.
type APISettings struct {
	// APIKey may be empty here; late.New reports a missing key.
	APIKey         string            `yaml:"api_key" mapstructure:"api_key"`
	BaseURL        string            `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,http_url"`
	Timeout        time.Duration     `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	DefaultHeaders map[string]string `yaml:"default_headers" mapstructure:"default_headers"`
}

// ApplyDefaults applies default values to every section.
func (s *Settings) ApplyDefaults() {
	if s.API.BaseURL == "" {
		s.API.BaseURL = late.DefaultBaseURL
	}
	if s.API.Timeout == 0 {
		s.API.Timeout = late.DefaultTimeout
	}
	s.Log.ApplyDefaults()

	d := observability.DefaultConfig(version.Product)
	if s.Telemetry.ServiceName == "" {
		s.Telemetry.ServiceName = d.ServiceName
	}
	if s.Telemetry.ServiceVersion == "" {
		s.Telemetry.ServiceVersion = version.Get().Version
	}
	if s.Telemetry.Environment == "" {
		s.Telemetry.Environment = d.Environment
	}
	if s.Telemetry.SampleRate == 0 {
		s.Telemetry.SampleRate = d.SampleRate
	}
	if s.Telemetry.Interval == 0 {
		s.Telemetry.Interval = d.Interval
	}
}

// Validate checks struct tags and the logging section.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ClientOptions converts the API section into client options.
func (s *Settings) ClientOptions() late.Options {
	return late.Options{
		APIKey:         s.API.APIKey,
		BaseURL:        s.API.BaseURL,
		Timeout:        s.API.Timeout,
		DefaultHeaders: maps.Clone(s.API.DefaultHeaders),
	}
}
