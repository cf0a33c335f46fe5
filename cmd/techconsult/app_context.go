package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/techconsult/internal/config"
	"github.com/alexisbeaulieu97/techconsult/internal/infrastructure/preferences"
	"github.com/alexisbeaulieu97/techconsult/internal/logger"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/submission"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
	tcerrors "github.com/alexisbeaulieu97/techconsult/pkg/errors"
)

// standaloneAnnotation marks commands that run without config or log file.
const standaloneAnnotation = "techconsult/standalone"

// AppContext bundles long-lived services created once per invocation.
type AppContext struct {
	flags   *rootFlags
	Config  *config.Config
	Logger  ports.Logger
	logFile io.Closer

	// holds entries logged before the log file is open
	early *logger.Buffer
}

func newAppContext(flags *rootFlags) *AppContext {
	early := logger.NewBuffer(0)
	return &AppContext{flags: flags, Logger: early.Logger(), early: early}
}

// Load reads the config file and opens the log file. Flags override file
// values.
func (a *AppContext) Load() error {
	configPath, err := resolvePath(a.flags.configPath, defaultConfigPath)
	if err != nil {
		return newCommandError("load configuration", "determining config path", err, "Ensure your HOME directory is set correctly.")
	}

	ctx := context.Background()
	if _, statErr := os.Stat(configPath); statErr != nil {
		a.Logger.Debug(ctx, "no config file, using defaults", "path", configPath)
	} else {
		a.Logger.Debug(ctx, "loading config file", "path", configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		a.Logger.Error(ctx, "configuration rejected", "path", configPath, "error", err)
		return newCommandError("load configuration", configPath, err, "Fix the configuration file or pass --config pointing at a valid one.")
	}

	if a.flags.logLevel != "" {
		cfg.Logging.Level = a.flags.logLevel
	}
	if a.flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if a.flags.failSubmissions {
		cfg.Submission.SimulateFailure = true
		a.Logger.Info(ctx, "submissions will be rejected")
	}
	if err := config.Validate(cfg); err != nil {
		a.Logger.Error(ctx, "configuration rejected", "path", configPath, "error", err)
		return newCommandError("load configuration", "applying flags", err, "Use one of debug, info, warn or error for --log-level.")
	}
	a.Config = cfg

	logPath, err := resolvePath(cfg.Logging.File, defaultLogPath)
	if err != nil {
		return newCommandError("open log file", "determining log path", err, "Ensure your HOME directory is set correctly.")
	}
	if err := a.openLog(logPath); err != nil {
		return newCommandError("open log file", logPath, err, "Check that the log directory is writable or set logging.file in the config.")
	}
	a.early.Flush(a.Logger)
	return nil
}

func (a *AppContext) openLog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:         a.Config.Logging.Level,
		HumanReadable: a.Config.Logging.HumanReadable,
		Writer:        file,
	})
	if err != nil {
		_ = file.Close()
		return err
	}

	a.Logger = log
	a.logFile = file
	return nil
}

// Close releases the log file.
func (a *AppContext) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	a.Logger = logger.NewNop()
	return err
}

// Abort runs when Load fails. It releases anything Load opened and writes the
// buffered warnings and errors to w, since no log file will receive them.
func (a *AppContext) Abort(w io.Writer) {
	_ = a.Close()
	console, err := logger.New(logger.Options{
		Level:         "warn",
		HumanReadable: true,
		Writer:        w,
		Component:     "startup",
	})
	if err != nil {
		return
	}
	a.early.Flush(console)
}

// CommandContext returns the command's context carrying a fresh correlation
// ID, and a logger scoped to the command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	return ctx, a.Logger.With("command", name)
}

// PreferenceStore opens the preference file named by the config. An
// unreadable file is logged and treated as empty.
func (a *AppContext) PreferenceStore() (*preferences.FileStore, error) {
	path, err := resolvePath(a.Config.Preferences.Path, defaultPreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("determine preferences path: %w", err)
	}
	return preferences.NewFileStore(path, a.Logger.With("component", "preferences"))
}

// ThemeService reads the stored theme. apply may be nil for commands that
// never render.
func (a *AppContext) ThemeService(apply theme.Applier) (*theme.StoreService, error) {
	store, err := a.PreferenceStore()
	if err != nil {
		return nil, err
	}
	return theme.NewStoreService(store, apply), nil
}

// SubmissionService builds the simulated submission backend.
func (a *AppContext) SubmissionService() submission.Service {
	return submission.NewSimulated(submission.Options{
		Delay:  a.Config.Submission.Delay,
		Fail:   a.Config.Submission.SimulateFailure,
		Logger: a.Logger.With("component", "submission"),
	})
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return tcerrors.NewCommandError(operation, context, cause, suggestion)
}
