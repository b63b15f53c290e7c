package tui

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/orchestration"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel()
	msg := MemStatsMsg{Alloc: 50 << 20, HeapInuse: 80 << 20, NumGC: 10, PauseTotalNs: 2e6, NumGoroutine: 8}
	m.UpdateMemStats(msg)

	got := MemStatsMsg{Alloc: m.alloc, HeapInuse: m.heapInuse, NumGC: m.numGC, PauseTotalNs: m.pauseTotalNs, NumGoroutine: m.numGoroutine}
	if got != msg {
		t.Errorf("stored %+v, want %+v", got, msg)
	}
}

func TestMetricsModel_UpdateProgress(t *testing.T) {
	tests := []struct {
		name      string
		ago       time.Duration
		last      float64
		speed     float64
		progress  float64
		wantSpeed float64
		wantLast  float64
	}{
		{"first sample", time.Second, 0, 0, 0.5, 0.5, 0.5},
		{"too soon", 10 * time.Millisecond, 0, 0, 0.5, 0, 0},
		{"no forward progress", time.Second, 0.5, 0, 0.5, 0, 0.5},
		{"going backwards", time.Second, 0.5, 0.2, 0.1, 0.2, 0.1},
		{"smoothed", time.Second, 0.2, 0.1, 0.5, 0.7*0.1 + 0.3*0.3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetricsModel()
			m.lastUpdate = time.Now().Add(-tt.ago)
			m.lastProgress = tt.last
			m.speed = tt.speed

			m.UpdateProgress(tt.progress)
			// dt is measured against the wall clock, so allow a little slack.
			if math.Abs(m.speed-tt.wantSpeed) > 0.01 {
				t.Errorf("speed = %v, want %v", m.speed, tt.wantSpeed)
			}
			if m.lastProgress != tt.wantLast {
				t.Errorf("lastProgress = %v, want %v", m.lastProgress, tt.wantLast)
			}
		})
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(40, 15)
	m.UpdateMemStats(MemStatsMsg{Alloc: 50 << 20, HeapInuse: 80 << 20, NumGC: 3, PauseTotalNs: 1_500_000, NumGoroutine: 8})
	m.speed = 0.25

	view := m.View()
	for _, want := range []string{"Metrics", "Memory:", "50 MiB", "Heap:", "80 MiB", "GC Runs:", "3 (1.5ms)", "Goroutines:", "Speed:", "25.0%/s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Passed:") {
		t.Error("summary shown before the run finished")
	}
}

func TestMetricsModel_View_Summary(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(70, 15)
	m.UpdateMemStats(MemStatsMsg{Alloc: 5 * 1024})

	m.SetSummary([]orchestration.SuiteResult{
		{Name: "add_fuzz", Report: harness.Report{Trials: 1500, Ops: 3000}},
		{Name: "div_fuzz", Report: harness.Report{Trials: 20, Ops: 40}, Err: context.Canceled},
	})

	view := m.View()
	for _, want := range []string{"5.0 KiB", "Passed:", "Failed:", "Trials:", "1,520", "Checked:", "3,040"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMetricsModel_TwoColumns(t *testing.T) {
	narrow, wide := NewMetricsModel(), NewMetricsModel()
	narrow.SetSize(40, 15)
	wide.SetSize(80, 15)

	// Five cells: one per row when narrow, paired when wide.
	lineWith := func(view, s string) string {
		for line := range strings.SplitSeq(view, "\n") {
			if strings.Contains(line, s) {
				return line
			}
		}
		return ""
	}
	if l := lineWith(narrow.View(), "Memory:"); strings.Contains(l, "Heap:") {
		t.Errorf("narrow panel paired cells: %q", l)
	}
	if l := lineWith(wide.View(), "Memory:"); !strings.Contains(l, "Heap:") {
		t.Errorf("wide panel did not pair cells: %q", l)
	}
}

func TestFormatMetricCol(t *testing.T) {
	col := formatMetricCol("Memory:", "50 MiB", 30)
	if !strings.Contains(col, "Memory:") || !strings.Contains(col, "50 MiB") {
		t.Errorf("column = %q", col)
	}
	if w := lipgloss.Width(col); w != 30 {
		t.Errorf("width = %d, want padding to 30", w)
	}
	if w := lipgloss.Width(formatMetricCol("Memory:", strings.Repeat("9", 40), 30)); w <= 30 {
		t.Errorf("long values must not be truncated, width = %d", w)
	}
}
