package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/techconsult/internal/config"
	"github.com/alexisbeaulieu97/techconsult/pkg/diff"
)

type configOptions struct {
	diff bool
}

func newConfigCmd(app *AppContext) *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, the config file and command-line flags are merged.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effective, err := config.Encode(app.Config)
			if err != nil {
				return newCommandError("print configuration", "encoding YAML", err, "Report this as a bug.")
			}

			if !opts.diff {
				_, err = cmd.OutOrStdout().Write(effective)
				return err
			}

			defaults, err := config.Encode(config.Default())
			if err != nil {
				return newCommandError("print configuration", "encoding defaults", err, "Report this as a bug.")
			}
			out := diff.Unified(defaults, effective, "defaults", "effective")
			if out == "" {
				out = "Configuration matches the defaults.\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show only how the effective configuration differs from the defaults")

	return cmd
}
