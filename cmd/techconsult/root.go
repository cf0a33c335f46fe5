package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	route           string
	configPath      string
	logLevel        string
	verbose         bool
	failSubmissions bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(newAppContext(&rootFlags{}))
}

func newRootCmdFor(app *AppContext) *cobra.Command {
	flags := app.flags

	cmd := &cobra.Command{
		Use:           "techconsult",
		Short:         "IT Tech Consultant in your terminal",
		Long:          `Browse the IT Tech Consultant site: managed services, the AI agent workflow request form and a persisted light/dark theme.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[standaloneAnnotation] != "" {
				return nil
			}
			if err := app.Load(); err != nil {
				app.Abort(cmd.ErrOrStderr())
				return err
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.site")
			logger.Info(ctx, "launching site")
			err := runSite(ctx, app, logger, flags.route)
			if err != nil {
				logger.Error(ctx, "site command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.route, "route", "r", "", "Initial page (/, /managed-services, /ai-agent-request)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ~/.techconsult/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.failSubmissions, "fail-submissions", false, "Make every request submission fail")

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newServicesCmd())
	cmd.AddCommand(newRequestCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	closeOnFailure(cmd, app)
	return cmd
}

// closeOnFailure releases the log file when a command's RunE fails, since
// cobra skips PersistentPostRunE in that case.
func closeOnFailure(cmd *cobra.Command, app *AppContext) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) (err error) {
			defer func() {
				if err != nil {
					_ = app.Close()
				}
			}()
			return run(c, args)
		}
	}
	for _, child := range cmd.Commands() {
		closeOnFailure(child, app)
	}
}
