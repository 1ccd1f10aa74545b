// Package cli implements the late command.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	late "github.com/kbukum/late-go"
	"github.com/kbukum/late-go/config"
	"github.com/kbukum/late-go/logger"
	"github.com/kbukum/late-go/observability"
	"github.com/kbukum/late-go/version"
)

type globalFlags struct {
	apiKey     string
	baseURL    string
	configFile string
	logLevel   string
	timeout    time.Duration
}

// app is the state shared by the commands of one run.
type app struct {
	env      *Env
	flags    globalFlags
	settings *config.Settings
	log      *logger.Logger
	metrics  *observability.ClientMetrics
	shutdown observability.ShutdownFunc
	client   *late.Client
}

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, env *Env, args []string) int {
	a := &app{env: env}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if a.shutdown != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if serr := a.shutdown(sctx); serr != nil && a.log != nil {
			a.log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", serr))
		}
		cancel()
	}
	if err != nil {
		fmt.Fprint(env.Stderr, describeError(err))
		return exitCode(err)
	}
	return ExitOK
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "late",
		Short: "Schedule and manage social media posts with the Late API",
		Long: `Schedule and manage social media posts with the Late API.

Settings are read from config.yml, .env, and the environment
(LATE_API_KEY, LATE_BASE_URL, LOG_LEVEL, ...). Flags override them.`,
		Version:           version.Get().String(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.apiKey, "api-key", "", "API key (default $LATE_API_KEY)")
	f.StringVar(&a.flags.baseURL, "base-url", "", "API base URL")
	f.StringVar(&a.flags.configFile, "config", "", "config file path")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout")

	cmd.AddCommand(
		a.postsCmd(),
		a.accountsCmd(),
		a.usageCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return cmd
}

// setup loads settings, applies flag overrides, and starts logging and
// telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := a.env.LoadSettings(a.flags.configFile)
	if err != nil {
		return &configError{err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		s.API.APIKey = a.flags.apiKey
	}
	if flags.Changed("base-url") {
		s.API.BaseURL = a.flags.baseURL
	}
	if flags.Changed("log-level") {
		s.Log.Level = a.flags.logLevel
	}
	if flags.Changed("timeout") {
		s.API.Timeout = a.flags.timeout
	}
	if err := s.Validate(); err != nil {
		return &configError{err: err}
	}
	a.settings = s
	a.log = logger.NewWithWriter(&s.Log, version.Product, a.env.Stderr)

	shutdown, err := observability.Setup(cmd.Context(), s.Telemetry, a.log)
	if err != nil {
		return &configError{err: fmt.Errorf("telemetry: %w", err)}
	}
	a.shutdown = shutdown
	if s.Telemetry.Enabled() {
		if a.metrics, err = observability.NewClientMetrics(observability.Meter()); err != nil {
			return &configError{err: fmt.Errorf("telemetry: %w", err)}
		}
	}
	return nil
}

// lateClient builds the API client on first use.
func (a *app) lateClient() (*late.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	opts := a.settings.ClientOptions()
	opts.Logger = a.log
	opts.Metrics = a.metrics
	c, err := late.New(opts)
	if err != nil {
		if errors.Is(err, late.ErrMissingAPIKey) {
			return nil, &configError{err: err}
		}
		return nil, err
	}
	a.client = c
	return c, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.env.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
