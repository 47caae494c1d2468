package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve the configuration and report whether it is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			log.Info().
				Stringer("env", cfg.Env).
				Str("url", cfg.Server.URL()).
				Msg("configuration is valid")
			return nil
		},
	}
}
