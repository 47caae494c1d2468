// Command envconfig resolves the server configuration from the environment
// and prints it, checks it, or shows the database pool it describes.
package main

import (
	"os"

	"github.com/MKhiriev/server-env-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("envconfig")

	opts, err := parseOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting envconfig options")
	}

	if err := newRootCmd(opts).Execute(); err != nil {
		log.Error().Err(err).Msg("envconfig failed")
		os.Exit(1)
	}
}

func buildInfo() (version, date, commit string) {
	version, date, commit = buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return version, date, commit
}
