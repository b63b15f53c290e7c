// Package cli renders vec32check runs on a terminal: the spinner and
// progress bar, the suite summary table, mismatch listings and reports,
// shell completion scripts, and the interactive kernel calculator.
package cli
