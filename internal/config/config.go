// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/server-env-config/internal/logger"
	"github.com/rs/zerolog"
)

// EnvLogLevel holds the log level of the application. It is not interpreted
// by the resolver, only carried and rendered back.
const EnvLogLevel = "LOG_LEVEL"

// Config is the full configuration of a server: deployment environment, HTTP
// server settings and database settings. It is built once by [Resolver] and
// never mutated afterwards, so it can be shared freely between goroutines.
type Config struct {
	// Env is the deployment environment. Env: APP_ENV.
	Env Environment
	// Server holds everything needed to launch the HTTP server.
	Server Server
	// DB holds everything needed to open the database pool.
	DB Database
	// LogLevel is the raw LOG_LEVEL text, "" when unset.
	LogLevel string
}

// Resolver builds a [Config] from a [Source].
type Resolver struct {
	source Source
	logger *logger.Logger
}

// NewResolver returns a Resolver reading from source. A nil log discards
// resolver logs.
func NewResolver(source Source, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{source: source, logger: log}
}

// Init resolves the deployment environment from APP_ENV and then the rest of
// the configuration. PORT falls back to defaultPort.
//
// Any failure aborts the whole resolution: the error of the first failing
// variable is returned unchanged and no partial *Config is produced.
func (r *Resolver) Init(defaultPort uint16) (*Config, error) {
	env, err := ResolveEnvironment(r.source)
	if err != nil {
		return nil, err
	}
	return r.InitFor(defaultPort, env)
}

// InitFor is like [Resolver.Init] but uses env instead of reading APP_ENV.
func (r *Resolver) InitFor(defaultPort uint16, env Environment) (*Config, error) {
	r.logger.Debug().Msg("configuring server")

	level := zerolog.InfoLevel
	if env == EnvironmentTest {
		level = zerolog.DebugLevel
	}
	r.logger.WithLevel(level).Msgf("environment set to %s", env)

	db, err := NewDatabase(r.source, env)
	if err != nil {
		return nil, err
	}
	server, err := NewServer(r.source, DefaultHost, defaultPort)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:      env,
		Server:   server,
		DB:       db,
		LogLevel: String(r.source, EnvLogLevel, ""),
	}, nil
}

// Init resolves a [Config] from the process environment.
// See [Resolver.Init].
func Init(defaultPort uint16) (*Config, error) {
	return NewResolver(ProcessSource(), logger.Global()).Init(defaultPort)
}

// InitFor resolves a [Config] from the process environment for env.
// See [Resolver.InitFor].
func InitFor(defaultPort uint16, env Environment) (*Config, error) {
	return NewResolver(ProcessSource(), logger.Global()).InitFor(defaultPort, env)
}

// String prints every value in .env format, keyed by the variable it is read
// from, including values that were left at their default. The output can be
// redirected to a file and loaded back to reproduce the same Config.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("# The following items are the environment variables and its values from\n")
	b.WriteString("# the OS, from an .env file, or the default value used by the server.\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# APP_URL --> %s\n", c.Server.URL())
	b.WriteString("#\n")
	fmt.Fprintf(&b, "%s=%s\n", EnvAppEnv, c.Env)
	b.WriteString(c.Server.String())
	b.WriteString(c.DB.String())
	fmt.Fprintf(&b, "%s=%s\n", EnvLogLevel, quote(c.LogLevel))
	return b.String()
}

// quoteReplacer escapes what a dotenv parser would otherwise interpret
// inside double quotes, variable expansion included.
var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// bare renders s unquoted when it only holds characters a dotenv parser
// reads back literally, and quoted otherwise.
func bare(s string) string {
	if s == "" || strings.IndexFunc(s, needsQuoting) >= 0 {
		return quote(s)
	}
	return s
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune(".-_:[]%", r):
		return false
	}
	return true
}
