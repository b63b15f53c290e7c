package tui

import (
	"time"

	"github.com/mjakub/bignum/internal/orchestration"
)

// ProgressMsg carries one aggregated progress update from the bridge.
type ProgressMsg orchestration.AggregatedProgress

// ProgressDoneMsg is sent once the progress channel has closed.
type ProgressDoneMsg struct{}

// SuiteResultsMsg delivers the sorted results of a finished run.
type SuiteResultsMsg struct {
	Results []orchestration.SuiteResult
}

// ErrorMsg reports the error that decided the exit code.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg is a host-wide CPU and memory sample, in percent.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// RunCompleteMsg ends a run. Generation tells apart runs restarted with the
// reset key.
type RunCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run context ends.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
