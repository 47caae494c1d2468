package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by the show command.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newShowCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the resolved configuration.

The text output is in .env format, keyed by the variables the values are
read from, defaults included, so it can be redirected to a file:

  envconfig show > .env
  envconfig show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			var rendered string
			switch output {
			case outputText:
				rendered = cfg.String()
			case outputJSON:
				if rendered, err = cfg.FormatJSON(); err != nil {
					return err
				}
				rendered += "\n"
			case outputYAML:
				if rendered, err = cfg.FormatYAML(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown output format %q, want %s, %s or %s", output, outputText, outputJSON, outputYAML)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json or yaml)")

	return cmd
}
