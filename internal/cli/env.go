package cli

import (
	"io"
	"os"

	"github.com/kbukum/late-go/config"
)

// Env holds the dependencies of a CLI run.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// LoadSettings reads settings; configFile is empty unless --config is set.
	LoadSettings func(configFile string) (*config.Settings, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Env {
	return &Env{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		LoadSettings: loadSettings,
	}
}

func loadSettings(configFile string) (*config.Settings, error) {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	var s config.Settings
	if err := config.Load("late", &s, opts...); err != nil {
		return nil, err
	}
	return &s, nil
}
