package main

import (
	"fmt"

	"github.com/MKhiriev/server-env-config/internal/config"
	"github.com/MKhiriev/server-env-config/internal/logger"
	"github.com/caarlos0/env/v11"
)

// options are the settings of the envconfig command itself, not of the
// server being configured. They are read from ENVCONFIG_* variables first
// and then overridden by command-line flags.
type options struct {
	// DefaultPort is used when PORT is absent.
	// Env: ENVCONFIG_DEFAULT_PORT
	DefaultPort uint16 `env:"DEFAULT_PORT" envDefault:"8080"`

	// EnvFiles are .env files loaded below the process environment.
	// Env: ENVCONFIG_ENV_FILES (comma separated)
	EnvFiles []string `env:"ENV_FILES" envSeparator:","`

	// AppEnv forces the deployment environment instead of reading APP_ENV.
	// Env: ENVCONFIG_APP_ENV
	AppEnv string `env:"APP_ENV"`

	// LogLevel filters the command's own logs.
	// Env: ENVCONFIG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Overrides are KEY=VALUE pairs applied above the process environment.
	// Flag only.
	Overrides map[string]string
}

// parseOptions populates options from ENVCONFIG_* environment variables
// using the caarlos0/env library.
func parseOptions() (*options, error) {
	opts := &options{}
	err := env.ParseWithOptions(opts, env.Options{Prefix: "ENVCONFIG_"})
	if err != nil {
		return nil, fmt.Errorf("error getting env options: %w", err)
	}

	return opts, nil
}

// resolve layers the .env files, the process environment and the overrides,
// and resolves the configuration from the result.
func (o *options) resolve(log *logger.Logger) (*config.Config, error) {
	src, err := config.NewSourceBuilder().
		WithDotenv(o.EnvFiles...).
		WithProcessEnv().
		WithOverrides(o.Overrides).
		Build()
	if err != nil {
		return nil, err
	}

	resolver := config.NewResolver(src, log)
	if o.AppEnv == "" {
		return resolver.Init(o.DefaultPort)
	}

	appEnv, err := config.EnvironmentString(o.AppEnv)
	if err != nil {
		return nil, fmt.Errorf("invalid --app-env: %w", err)
	}

	return resolver.InitFor(o.DefaultPort, appEnv)
}
