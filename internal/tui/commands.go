package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjakub/bignum/internal/config"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/orchestration"
	"github.com/mjakub/bignum/internal/sysmon"
)

const sampleInterval = 500 * time.Millisecond

// startRunCmd executes the suites through the orchestration layer, with the
// bridge types standing in for the terminal presenter.
func startRunCmd(ref *programRef, ctx context.Context, suites []harness.Suite, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		opts := orchestration.RunOptions{
			Options: harness.Options{Trials: cfg.Trials, MaxWords: cfg.MaxWords, Seed: cfg.Seed},
			Workers: cfg.Workers,
		}
		results := orchestration.ExecuteSuites(ctx, suites, opts, &TUIProgressReporter{ref: ref}, io.Discard)

		presenter := &TUIResultPresenter{ref: ref}
		code := orchestration.AnalyzeResults(results,
			orchestration.PresentationOptions{Verbose: cfg.Verbose},
			presenter, presenter, io.Discard)
		return RunCompleteMsg{ExitCode: code, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd reports the end of the run context, tagged with gen.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
