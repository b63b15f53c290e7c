// Package orchestration runs harness suites concurrently and aggregates their
// reports into a pass/fail outcome. It decouples suite execution from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
