package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/submission"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/pages/home"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/pages/request"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/pages/services"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/shell"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func runSite(ctx context.Context, app *AppContext, logger ports.Logger, routeFlag string) error {
	initial := app.Config.Site.InitialRoute
	if routeFlag != "" {
		initial = routeFlag
	}
	route, err := router.Parse(initial)
	if err != nil {
		return newCommandError("launch site", "choosing the initial page", err, "Pass --route with /, /managed-services or /ai-agent-request.")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("launch site", "checking the terminal", errNotTerminal, "Run techconsult from an interactive terminal, or use the services and request subcommands.")
	}

	themes, err := app.ThemeService(theme.LipglossApplier)
	if err != nil {
		return newCommandError("launch site", "loading preferences", err, "Check that the preferences file is readable and valid JSON.")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := shell.New(shell.Options{
		Context: ctx,
		Logger:  logger,
		Theme:   themes,
		Pages:   sitePages(ctx, logger, app.SubmissionService()),
		Initial: route,
	})
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "site execution failed", "error", err)
		return fmt.Errorf("failed to run site: %w", err)
	}

	logger.Info(ctx, "site closed", "theme", themes.Get().String())
	return nil
}

// sitePages wires one factory per route.
func sitePages(ctx context.Context, logger ports.Logger, svc submission.Service) map[router.Route]router.Factory {
	return map[router.Route]router.Factory{
		router.Home: func(mountID int) router.Page {
			return home.New(mountID, home.Options{Context: ctx, Logger: logger})
		},
		router.Services: func(int) router.Page {
			return services.New()
		},
		router.RequestForm: func(mountID int) router.Page {
			return request.New(mountID, request.Options{Context: ctx, Logger: logger, Service: svc})
		},
	}
}
