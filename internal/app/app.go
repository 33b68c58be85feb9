// Package app wires configuration, the checking engine and the CLI
// presentation into the primecheck command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/primecheck/internal/config"
	"github.com/agbru/primecheck/internal/logging"
	"github.com/agbru/primecheck/internal/primality"
	"github.com/agbru/primecheck/internal/ui"
)

// Application represents the primecheck application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *primality.Registry
	ErrWriter io.Writer

	logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom strategy registry for the application.
func WithRegistry(r *primality.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = primality.GlobalRegistry()
	}

	programName := "primecheck"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptivePoolSize(cfg)
	return app, nil
}

// Run executes the configured checks and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.ShowSegments {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	theme := ui.InitTheme(a.Config.Theme, a.Config.NoColor)
	a.logger = logging.NewConsoleLogger(a.ErrWriter, theme.Name == ui.NoColorTheme.Name)

	return a.runCheck(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
