package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run timed out.
	ExitErrorMismatch = 3   // Indicates a kernel result disagreed with its oracle.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

var (
	// ErrDivisionByZero is returned by the checked division entry points.
	// The unchecked kernel functions define n / 0 as (0, 0) instead.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeResult is returned when an unsigned subtraction would
	// produce a negative value.
	ErrNegativeResult = errors.New("negative result for unsigned value")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// SuiteError wraps the error that stopped a harness suite, keeping the suite
// name alongside the original cause.
type SuiteError struct {
	// Suite is the name of the suite that failed.
	Suite string
	// Cause is the underlying error that stopped the suite.
	Cause error
}

// Error returns the suite name followed by the cause.
func (e SuiteError) Error() string {
	return fmt.Sprintf("suite %s: %v", e.Suite, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SuiteError) Unwrap() error { return e.Cause }

// TimeoutError represents a run timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a kernel result that disagreed with an independent
// computation of the same value.
type MismatchError struct {
	// Op names the operation under test, e.g. "mul_ordered".
	Op string
	// Trial is the zero-based trial index within the suite.
	Trial int
	// Inputs holds the printed operands.
	Inputs []string
	// Want is the printed oracle value.
	Want string
	// Got is the printed kernel value.
	Got string
}

// Error returns a single-line description of the mismatch.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch at trial %d: inputs=[%s] want=%s got=%s",
		e.Op, e.Trial, strings.Join(e.Inputs, ", "), e.Want, e.Got)
}

// InvariantError reports a violated arithmetic invariant, such as
// n != q*d + r after a division or a non-canonical result vector.
type InvariantError struct {
	// Op names the operation whose postcondition failed.
	Op string
	// Detail describes the violated relation.
	Detail string
}

// Error returns the operation and the violated relation.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

// NewInvariantError creates an InvariantError with a formatted detail.
func NewInvariantError(op, format string, a ...any) *InvariantError {
	return &InvariantError{Op: op, Detail: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that reports it.
func ExitCodeFor(err error) int {
	var (
		cfgErr      ConfigError
		timeoutErr  TimeoutError
		mismatchErr *MismatchError
		invErr      *InvariantError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr), errors.As(err, &invErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// ColorProvider supplies the escape sequences used when printing errors.
// A nil ColorProvider prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleSuiteError prints a human-readable description of err to out and
// returns the matching exit code.
//
// Parameters:
//   - err: The error returned by a suite run (nil means success).
//   - duration: How long the run lasted before the error.
//   - out: Destination for the message.
//   - colors: Optional color provider.
//
// Returns:
//   - int: The exit code from ExitCodeFor.
func HandleSuiteError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sStatus: Timeout.%s The run exceeded its time limit after %s%s%s.\n",
			red, reset, yellow, duration, reset)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled.%s The run was interrupted after %s%s%s.\n",
			yellow, reset, yellow, duration, reset)
	case ExitErrorMismatch:
		fmt.Fprintf(out, "%sStatus: Mismatch.%s %v\n", red, reset, err)
	default:
		fmt.Fprintf(out, "%sStatus: Failure.%s %v\n", red, reset, err)
	}
	return code
}
