package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mjakub/bignum/internal/cli"
	"github.com/mjakub/bignum/internal/config"
	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/logging"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/tui"
	"github.com/mjakub/bignum/internal/ui"
)

// Application represents the vec32check application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *harness.Registry
	ErrWriter io.Writer
	Logger    *logging.ZerologAdapter
	// In feeds the REPL.
	In io.Reader
	// RunID tags the metrics, the log lines and the failure report of one run.
	RunID string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the built-in suite registry.
func WithRegistry(r *harness.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithInput sets the reader the REPL consumes instead of os.Stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l *logging.ZerologAdapter) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin, RunID: uuid.NewString()}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = harness.DefaultRegistry()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "vec32check")
	}

	programName := "vec32check"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.Logger = app.Logger.With(logging.String("run_id", app.RunID))
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level, err := zerolog.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)
	if !a.Config.NoColor {
		ui.SetTheme(a.Config.Theme)
	}

	switch {
	case a.Config.List:
		cli.PrintSuiteList(a.Registry, out)
		return apperrors.ExitSuccess
	case a.Config.REPL:
		return a.runREPL(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	}
	return a.runSuites(ctx, out)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Registry, cli.REPLConfig{
		Options: a.harnessOptions(),
		Timeout: a.Config.Timeout,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	suites, err := orchestration.SelectSuites(a.Config.Suite, a.Registry)
	if err != nil {
		fmt.Fprintln(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}
	a.Logger.Debug("starting dashboard", logging.Int("suites", len(suites)))
	return tui.Run(ctx, suites, a.Config, Version)
}

// lifecycle bounds ctx by the configured timeout and by SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

func (a *Application) harnessOptions() harness.Options {
	return harness.Options{Trials: a.Config.Trials, MaxWords: a.Config.MaxWords, Seed: a.Config.Seed}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
