package logger

import (
	"fmt"
	"slices"
	"strings"
)

var (
	levels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	formats = []string{FormatJSON, FormatConsole, FormatPretty}
)

// Config is the "log" section of the settings file.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults fills an info-level console logger on stderr.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate rejects unknown levels and formats.
func (c *Config) Validate() error {
	if !slices.Contains(levels, c.Level) {
		return fmt.Errorf("log.level %q is not one of %s", c.Level, strings.Join(levels, ", "))
	}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("log.format %q is not one of %s", c.Format, strings.Join(formats, ", "))
	}
	return nil
}

func (c *Config) console() bool {
	f := strings.ToLower(c.Format)
	return f == FormatConsole || f == FormatPretty
}
