// Package config parses and validates the vec32check command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/mjakub/bignum/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment variable read by the harness.
	EnvPrefix = "VEC32_"

	// DefaultSeed is the seed the reference drivers were tuned with.
	DefaultSeed uint64 = 0xa134f102
	// DefaultTimeout bounds a complete run.
	DefaultTimeout = 5 * time.Minute
	// DefaultSuite selects every registered suite.
	DefaultSuite = "all"

	// ProfileQuick runs small trial counts suited to a pre-commit check.
	ProfileQuick = "quick"
	// ProfileFull runs the trial counts of a release qualification.
	ProfileFull = "full"
)

var (
	logLevels        = []string{"debug", "info", "warn", "error"}
	themes           = []string{"dark", "light", "orange"}
	completionShells = []string{"bash", "zsh", "fish"}
)

// AppConfig aggregates the application's configuration parameters, parsed from
// command-line flags and VEC32_* environment variables.
type AppConfig struct {
	// Suite is "all", "fuzz", "timing" or a comma-separated list of suite names.
	Suite string
	// Trials is the number of random trials per fuzz suite. Zero selects the
	// profile default.
	Trials int
	// MaxWords bounds the length of generated vectors. Zero selects the
	// profile default.
	MaxWords int
	// Seed initializes every suite's pseudo-random source.
	Seed uint64
	// Workers bounds the number of suites running at once. Zero selects one
	// worker per logical processor.
	Workers int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Profile is ProfileQuick or ProfileFull.
	Profile string
	// Quiet prints only the exit status line.
	Quiet bool
	// Verbose prints each suite's digest and operation counts.
	Verbose bool
	// TUI runs the interactive dashboard instead of the line-oriented output.
	TUI bool
	// NoColor disables ANSI colors.
	NoColor bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// MetricsFile, when set, receives the Prometheus text exposition of the run.
	MetricsFile string
	// List prints the registered suites and exits.
	List bool
	// REPL starts the interactive kernel calculator instead of a run.
	REPL bool
	// Completion names a shell whose completion script is printed.
	Completion string
	// Theme selects the ANSI palette: dark, light or orange.
	Theme string
	// OutputFile, when set, receives a reproduction report of every mismatch.
	OutputFile string
}

// ParseConfig parses the command-line arguments into an AppConfig. Values not
// given on the command line are taken from VEC32_* environment variables,
// then from the selected profile.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The arguments, without the program name.
//   - errorWriter: Destination for flag parsing errors and usage.
//   - availableSuites: Registered suite names, listed in the usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A flag.ErrHelp, a parse error, or a ConfigError from Validate.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableSuites []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Suite, "suite", DefaultSuite, fmt.Sprintf("Suites to run: all, fuzz, timing, or a list from [%s].", strings.Join(availableSuites, ", ")))
	fs.StringVar(&config.Suite, "s", DefaultSuite, "Shorthand for --suite.")
	fs.IntVar(&config.Trials, "trials", 0, "Random trials per fuzz suite (0 uses the profile).")
	fs.IntVar(&config.MaxWords, "max-words", 0, "Maximum words per generated vector (0 uses the profile).")
	fs.Uint64Var(&config.Seed, "seed", DefaultSeed, "Seed for the pseudo-random sources.")
	fs.IntVar(&config.Workers, "workers", 0, "Suites run concurrently (0 uses the processor count).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.StringVar(&config.Profile, "profile", ProfileQuick, "Trial profile: quick or full.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the final status.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print per-suite digests and operation counts.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the interactive dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.BoolVar(&config.List, "list", false, "List the registered suites and exit.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the interactive kernel calculator.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	fs.StringVar(&config.Theme, "theme", "dark", "Color theme: dark, light or orange.")
	fs.StringVar(&config.OutputFile, "output", "", "Write a mismatch reproduction report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config.Profile = strings.ToLower(strings.TrimSpace(config.Profile))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	config.Theme = strings.ToLower(strings.TrimSpace(config.Theme))

	if err := config.Validate(availableSuites); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return ApplyProfileDefaults(config), nil
}

// Validate checks the configuration for values that cannot be run.
func (c AppConfig) Validate(availableSuites []string) error {
	if c.Trials < 0 {
		return apperrors.NewConfigError("--trials must be non-negative, got %d", c.Trials)
	}
	if c.MaxWords < 0 {
		return apperrors.NewConfigError("--max-words must be non-negative, got %d", c.MaxWords)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must be non-negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Profile != ProfileQuick && c.Profile != ProfileFull {
		return apperrors.NewConfigError("unknown profile %q (want %s or %s)", c.Profile, ProfileQuick, ProfileFull)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return apperrors.NewConfigError("unknown log level %q (want one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(themes, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (want one of %s)", c.Theme, strings.Join(themes, ", "))
	}
	if c.Completion != "" && !slices.Contains(completionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (want one of %s)", c.Completion, strings.Join(completionShells, ", "))
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui cannot be combined")
	}
	if c.REPL && c.TUI {
		return apperrors.NewConfigError("--repl and --tui cannot be combined")
	}
	return validateSuiteSelection(c.Suite, availableSuites)
}

func validateSuiteSelection(selection string, availableSuites []string) error {
	switch selection {
	case "all", "fuzz", "timing":
		return nil
	case "":
		return apperrors.NewConfigError("--suite must not be empty")
	}
	for name := range strings.SplitSeq(selection, ",") {
		name = strings.TrimSpace(name)
		if !slices.Contains(availableSuites, name) {
			return apperrors.NewConfigError("unknown suite %q (available: %s)", name, strings.Join(availableSuites, ", "))
		}
	}
	return nil
}
