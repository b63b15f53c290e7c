// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* and Print* functions write formatted output to an [io.Writer].
//     Examples: [DisplayProgress], [DisplayMismatch], [PrintExecutionConfig].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietSummary].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteFailureReport].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mjakub/bignum/internal/config"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/sysmon"
	"github.com/mjakub/bignum/internal/ui"
)

// PrintExecutionConfig displays the run parameters and the host details
// that matter when reproducing a failure elsewhere.
func PrintExecutionConfig(cfg config.AppConfig, runID string, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Run %s%s%s: profile %s%s%s, seed %s%#x%s, %d trials of up to %d words, timeout %s%s%s.\n",
		ui.ColorBold(), runID, ui.ColorReset(),
		ui.ColorCyan(), cfg.Profile, ui.ColorReset(),
		ui.ColorMagenta(), cfg.Seed, ui.ColorReset(),
		cfg.Trials, cfg.MaxWords,
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%s%s, %s%d%s logical processors, %d workers, Go %s%s%s.\n",
		ui.ColorCyan(), sysmon.ModelName(), ui.ColorReset(),
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		cfg.Workers,
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	features := sysmon.CPUFeatures()
	if len(features) == 0 {
		features = []string{"none detected"}
	}
	fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), strings.Join(features, " "), ui.ColorReset())
}

// PrintExecutionMode displays which suites will run.
func PrintExecutionMode(suites []harness.Suite, out io.Writer) {
	if len(suites) == 1 {
		fmt.Fprintf(out, "Execution mode: single suite %s%s%s.\n", ui.ColorGreen(), suites[0].Name(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Execution mode: %d suites in parallel.\n", len(suites))
	}
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintSuiteList prints every suite in the registry grouped by kind.
func PrintSuiteList(reg *harness.Registry, out io.Writer) {
	for _, kind := range []harness.Kind{harness.KindFuzz, harness.KindTiming} {
		fmt.Fprintf(out, "%s%s suites:%s\n", ui.ColorBold(), kind, ui.ColorReset())
		for _, name := range reg.ListKind(kind) {
			s, err := reg.Get(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "  %s%-18s%s %s\n", ui.ColorYellow(), name, ui.ColorReset(), s.Description())
		}
	}
}

// FormatQuietSummary returns the single line printed in quiet mode: one
// "name=digest" pair per passing suite, in the given order.
func FormatQuietSummary(results []orchestration.SuiteResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			parts = append(parts, r.Name+"="+r.Report.DigestString())
		}
	}
	return strings.Join(parts, " ")
}

// WriteFailureReport writes every recorded mismatch to path in a form that
// can be pasted back into a regression test. It writes nothing and returns
// nil when no suite failed.
func WriteFailureReport(path string, cfg config.AppConfig, results []orchestration.SuiteResult) error {
	var failed []orchestration.SuiteResult
	for _, r := range results {
		if len(r.Report.Failures) > 0 {
			failed = append(failed, r)
		}
	}
	if path == "" || len(failed) == 0 {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# vec32check mismatch report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Seed: %#x  Profile: %s  Max words: %d\n", cfg.Seed, cfg.Profile, cfg.MaxWords)
	for _, r := range failed {
		fmt.Fprintf(file, "\n[%s]\n", r.Name)
		for _, mm := range r.Report.Failures {
			fmt.Fprintf(file, "op=%s trial=%d\n", mm.Op, mm.Trial)
			for i, in := range mm.Inputs {
				fmt.Fprintf(file, "  in[%d]=%s\n", i, in)
			}
			fmt.Fprintf(file, "  want=%s\n  got=%s\n", mm.Want, mm.Got)
		}
	}
	return nil
}
