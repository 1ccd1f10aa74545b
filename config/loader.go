package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem is the slice of the OS the loader touches. Tests swap it out.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// OSFileSystem reads the real disk and process environment.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv sets variables from a dotenv file without clobbering ones already set.
func (OSFileSystem) LoadEnv(path string) error { return godotenv.Load(path) }

func (OSFileSystem) UserConfigDir() (string, error) { return os.UserConfigDir() }

// Resolver picks the settings file and dotenv file for an app.
type Resolver struct {
	FileSystem FileSystem
}

// Files is what a Resolver picked. Empty means none was found.
type Files struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles keeps explicit paths and searches for the rest.
func (r *Resolver) ResolveFiles(appName string, lc LoaderConfig) Files {
	files := Files{ConfigFile: lc.ConfigFile, EnvFile: lc.EnvFile}
	if files.ConfigFile == "" {
		files.ConfigFile = r.firstExisting(r.configCandidates(appName)...)
	}
	if files.EnvFile == "" {
		files.EnvFile = r.firstExisting(".env."+appName, ".env")
	}
	return files
}

// configCandidates searches the working directory before the user config dir.
func (r *Resolver) configCandidates(appName string) []string {
	candidates := []string{"./" + appName + ".yml", "./config.yml", "./config/config.yml"}
	if dir, err := r.FileSystem.UserConfigDir(); err == nil && dir != "" {
		candidates = append(candidates, filepath.Join(dir, appName, "config.yml"))
	}
	return candidates
}

func (r *Resolver) firstExisting(paths ...string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// LoaderConfig carries the loader's filesystem and any explicit file paths.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

type LoaderOption func(*LoaderConfig)

func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile loads path instead of searching. A missing path is an error.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile loads path as the dotenv file instead of searching.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// ErrConfigFileNotFound is returned when an explicit config file does not exist.
var ErrConfigFileNotFound = errors.New("config file not found")

// envBindings maps settings keys to the environment variables that set them.
var envBindings = map[string][]string{
	"api.api_key":           {"LATE_API_KEY"},
	"api.base_url":          {"LATE_BASE_URL", "LATE_API_BASE_URL"},
	"api.timeout":           {"LATE_TIMEOUT"},
	"log.level":             {"LOG_LEVEL", "LATE_LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT", "LATE_LOG_FORMAT"},
	"log.no_color":          {"NO_COLOR"},
	"telemetry.endpoint":    {"OTEL_EXPORTER_OTLP_ENDPOINT"},
	"telemetry.environment": {"LATE_ENVIRONMENT"},
	"telemetry.sample_rate": {"LATE_TRACE_SAMPLE_RATE"},
}

// Load fills s from the resolved config file, .env file, and environment,
// then applies defaults. It does not validate; call s.Validate.
func Load(appName string, s *Settings, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = OSFileSystem{}
	}

	if lc.ConfigFile != "" && !lc.FileSystem.Exists(lc.ConfigFile) {
		return fmt.Errorf("%w: %s", ErrConfigFileNotFound, lc.ConfigFile)
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(appName, lc)

	v, err := newViper(files, lc.FileSystem)
	if err != nil {
		return err
	}
	if err := v.Unmarshal(s); err != nil {
		return fmt.Errorf("failed to unmarshal config for %s: %w", appName, err)
	}
	s.ApplyDefaults()
	return nil
}

// newViper reads the config file, loads the .env file into the process
// environment, and binds the well-known variables.
func newViper(files Files, fs FileSystem) (*viper.Viper, error) {
	v := viper.New()

	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", files.ConfigFile, err)
		}
	}

	// .env never overrides variables already set in the environment
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", files.EnvFile, err)
		}
	}

	for key, vars := range envBindings {
		if err := v.BindEnv(append([]string{key}, vars...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return v, nil
}
