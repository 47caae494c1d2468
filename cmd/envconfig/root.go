package main

import (
	"fmt"

	"github.com/MKhiriev/server-env-config/internal/config"
	"github.com/MKhiriev/server-env-config/internal/logger"
	"github.com/spf13/cobra"
)

func newRootCmd(opts *options) *cobra.Command {
	version, date, commit := buildInfo()

	cmd := &cobra.Command{
		Use:   "envconfig",
		Short: "Resolve server configuration from environment variables",
		Long: `Resolve server configuration from environment variables.

The configuration is read from, in increasing priority:
  1. .env files given with --env-file
  2. the process environment
  3. KEY=VALUE pairs given with --set`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(cmd.ErrOrStderr(), "envconfig").AtLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(log.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", version, date, commit))

	flags := cmd.PersistentFlags()
	flags.Uint16Var(&opts.DefaultPort, "default-port", opts.DefaultPort, "port used when PORT is not set")
	flags.StringSliceVar(&opts.EnvFiles, "env-file", opts.EnvFiles, ".env file to load below the process environment (repeatable)")
	flags.StringVar(&opts.AppEnv, "app-env", opts.AppEnv, "deployment environment to use instead of APP_ENV")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level of envconfig itself")
	flags.StringToStringVar(&opts.Overrides, "set", opts.Overrides, "KEY=VALUE override applied above the process environment")

	cmd.AddCommand(
		newShowCmd(opts),
		newCheckCmd(opts),
		newPoolCmd(opts),
	)

	return cmd
}

// resolveConfig resolves the configuration with the logger attached to the
// command context.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, *logger.Logger, error) {
	log := logger.FromContext(cmd.Context())
	cfg, err := opts.resolve(log)
	if err != nil {
		return nil, log, fmt.Errorf("error resolving configuration: %w", err)
	}
	return cfg, log, nil
}
