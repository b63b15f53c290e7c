package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/progress"
	"github.com/mjakub/bignum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with the
// spinner and progress bar of DisplayProgress.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSuites int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSuites, out)
}

// CLIColorProvider feeds the active ui theme to apperrors.HandleSuiteError.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for
// colorized terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

type column struct {
	header string
	cells  []string
	colors []string
}

// PresentSummaryTable prints one row per suite. Columns are padded by hand
// because the ANSI codes would throw off text/tabwriter.
func (p CLIResultPresenter) PresentSummaryTable(results []orchestration.SuiteResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Suite Summary ---\n")

	cols := []column{{header: "Suite"}, {header: "Kind"}, {header: "Trials"}, {header: "Duration"}, {header: "Digest"}}
	for _, r := range results {
		cells := []string{
			r.Name,
			r.Kind.String(),
			format.FormatCount(r.Report.Trials),
			p.FormatDuration(r.Duration),
			r.Report.DigestString(),
		}
		colors := []string{ui.ColorBlue(), "", "", ui.ColorYellow(), ui.ColorMagenta()}
		for i := range cols {
			cols[i].cells = append(cols[i].cells, cells[i])
			cols[i].colors = append(cols[i].colors, colors[i])
		}
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c.header)
		for _, cell := range c.cells {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for i, c := range cols {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorUnderline(), c.header, ui.ColorReset(), padRight("", widths[i]-len(c.header)))
	}
	fmt.Fprintf(out, "%sStatus%s\n", ui.ColorUnderline(), ui.ColorReset())

	for row, r := range results {
		for i, c := range cols {
			cell := c.cells[row]
			fmt.Fprintf(out, "%s%s%s%s   ", c.colors[row], cell, ui.ColorReset(), padRight("", widths[i]-len(cell)))
		}
		fmt.Fprintln(out, statusCell(r))
	}
}

func statusCell(r orchestration.SuiteResult) string {
	switch {
	case r.Err == nil:
		return fmt.Sprintf("%s✅ Pass%s", ui.ColorGreen(), ui.ColorReset())
	case apperrors.IsContextError(r.Err):
		return fmt.Sprintf("%s⏸ Interrupted%s", ui.ColorYellow(), ui.ColorReset())
	case len(r.Report.Failures) > 0:
		return fmt.Sprintf("%s❌ %d mismatches%s", ui.ColorRed(), len(r.Report.Failures), ui.ColorReset())
	default:
		return fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), r.Err, ui.ColorReset())
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentFailures prints the recorded mismatches of each failed suite. Only
// the first mismatch per suite is shown unless verbose is set.
func (CLIResultPresenter) PresentFailures(results []orchestration.SuiteResult, verbose bool, out io.Writer) {
	for _, r := range results {
		failures := r.Report.Failures
		if len(failures) == 0 {
			var mm *apperrors.MismatchError
			if !errors.As(r.Err, &mm) {
				continue
			}
			failures = []*apperrors.MismatchError{mm}
		}
		fmt.Fprintf(out, "\n%s%s%s: %d mismatches\n", ui.ColorBold(), r.Name, ui.ColorReset(), len(failures))
		shown := failures
		if !verbose {
			shown = failures[:1]
		}
		for _, mm := range shown {
			DisplayMismatch(mm, out)
		}
		if hidden := len(failures) - len(shown); hidden > 0 {
			fmt.Fprintf(out, "  ... %d more (use --verbose or --output)\n", hidden)
		}
	}
}

// DisplayMismatch prints one mismatch with its operands on separate lines.
func DisplayMismatch(mm *apperrors.MismatchError, out io.Writer) {
	fmt.Fprintf(out, "  %s%s%s at trial %d\n", ui.ColorRed(), mm.Op, ui.ColorReset(), mm.Trial)
	for i, in := range mm.Inputs {
		fmt.Fprintf(out, "    in[%d] = %s\n", i, in)
	}
	fmt.Fprintf(out, "    want  = %s\n", mm.Want)
	fmt.Fprintf(out, "    got   = %s\n", mm.Got)
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// HandleError prints the status line for err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleSuiteError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(peakHeap, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(peakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
