package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/late-go/config"
	"github.com/kbukum/late-go/util"
	"github.com/kbukum/late-go/version"
)

func (a *app) usageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show plan usage and limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.lateClient()
			if err != nil {
				return err
			}
			stats, err := c.Usage.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.env.Stdout, "plan: %s\n", stats.PlanName)
			fmt.Fprintf(a.env.Stdout, "uploads:  %d / %s\n", stats.Usage.Uploads, limit(stats.Limits.Uploads))
			fmt.Fprintf(a.env.Stdout, "profiles: %d / %s\n", stats.Usage.Profiles, limit(stats.Limits.Profiles))
			return nil
		},
	}
}

func limit(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printJSON(redacted(a.settings))
		},
	})
	return cmd
}

// redacted is the printable form of the settings.
func redacted(s *config.Settings) map[string]any {
	return map[string]any{
		"api": map[string]any{
			"api_key":         util.MaskAPIKey(s.API.APIKey),
			"base_url":        s.API.BaseURL,
			"timeout":         s.API.Timeout.String(),
			"default_headers": s.API.DefaultHeaders,
		},
		"log": map[string]any{
			"level":  s.Log.Level,
			"format": s.Log.Format,
			"output": s.Log.Output,
		},
		"telemetry": map[string]any{
			"enabled":     s.Telemetry.Enabled(),
			"endpoint":    s.Telemetry.Endpoint,
			"service":     s.Telemetry.ServiceName,
			"environment": s.Telemetry.Environment,
			"sample_rate": s.Telemetry.SampleRate,
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Runs without settings.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintf(a.env.Stdout, "%s %s\n", version.Product, version.Get().String())
			return nil
		},
	}
}
