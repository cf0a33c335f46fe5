package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme")
			svc, err := app.ThemeService(nil)
			if err != nil {
				logger.Error(ctx, "theme read failed", "error", err)
				return newCommandError("read theme", "loading preferences", err, "Check that the preferences directory is writable.")
			}
			current := svc.Get()
			logger.Info(ctx, "theme read", "theme", current.String())
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.set")
			next, err := theme.Parse(args[0])
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing %q", args[0]), err, "Use either light or dark.")
			}
			return changeTheme(ctx, cmd, app, logger, func(svc theme.Service) (theme.Theme, error) {
				return next, svc.Set(next)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.toggle")
			return changeTheme(ctx, cmd, app, logger, theme.Toggle)
		},
	})

	return cmd
}

func changeTheme(ctx context.Context, cmd *cobra.Command, app *AppContext, logger ports.Logger, change func(theme.Service) (theme.Theme, error)) error {
	svc, err := app.ThemeService(nil)
	if err != nil {
		logger.Error(ctx, "theme read failed", "error", err)
		return newCommandError("change theme", "loading preferences", err, "Check that the preferences directory is writable.")
	}

	next, err := change(svc)
	if err != nil {
		logger.Error(ctx, "theme change failed", "error", err)
		return newCommandError("change theme", "saving preferences", err, "Check disk space and file permissions, then retry.")
	}

	logger.Info(ctx, "theme changed", "theme", next.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", next)
	return nil
}
