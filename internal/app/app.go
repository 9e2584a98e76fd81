// Package app wires configuration, logging, themes and rendering into the
// termstyle executable. It owns the exit-code mapping so main stays a thin
// shell.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/termstyle/internal/cli"
	"github.com/agbru/termstyle/internal/config"
	apperrors "github.com/agbru/termstyle/internal/errors"
	"github.com/agbru/termstyle/internal/logging"
	"github.com/agbru/termstyle/internal/tui"
	"github.com/agbru/termstyle/internal/ui"
)

// Application represents the termstyle application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, program name included.
//   - errWriter: The writer for parse errors and usage output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp if help was requested, or a configuration error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "termstyle"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context bounding interactive modes.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Enabled() {
		ui.SetTheme(a.Config.Theme)
	}

	a.Logger.Debug("starting",
		logging.String("mode", a.Config.Mode),
		logging.String("theme", ui.GetCurrentTheme().Name))

	switch a.Config.Mode {
	case config.ModeTUI:
		return tui.Run(ctx, a.Config)
	case config.ModeDemo:
		return a.runDemo(out)
	default:
		return a.runOperation(out)
	}
}

// runDemo renders the composite demo surface.
func (a *Application) runDemo(out io.Writer) int {
	cli.PrintRunConfig(a.Config, out)
	if err := cli.PrintDemo(a.Config, out); err != nil {
		return a.fail(err)
	}
	return apperrors.ExitSuccess
}

// runOperation renders a single engine operation.
func (a *Application) runOperation(out io.Writer) int {
	rendered, err := cli.RenderOperation(a.Config)
	if err != nil {
		return a.fail(err)
	}
	a.Logger.Debug("rendered",
		logging.String("mode", a.Config.Mode),
		logging.Int("bytes", len(rendered)))
	fmt.Fprintln(out, rendered)
	return apperrors.ExitSuccess
}

// fail reports an error to the user and maps it to an exit code.
func (a *Application) fail(err error) int {
	a.Logger.Error("run failed",
		logging.String("mode", a.Config.Mode),
		logging.Err(err))
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return ExitCodeFor(err)
}

// ExitCodeFor maps an error to the process exit code.
//
// Parameters:
//   - err: The error to map.
//
// Returns:
//   - int: The exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsInvalidFormat(err):
		return apperrors.ExitErrorFormat
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	default:
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
