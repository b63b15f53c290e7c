package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mjakub/bignum/internal/format"
	"github.com/mjakub/bignum/internal/orchestration"
)

// MetricsModel displays runtime memory figures, the progress rate and, once
// the run ends, its pass/fail summary.
type MetricsModel struct {
	alloc        uint64
	heapInuse    uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	speed        float64 // progress per second
	lastProgress float64
	lastUpdate   time.Time
	summary      *orchestration.Summary
	width        int
	height       int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapInuse = msg.HeapInuse
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress folds a new average progress into the smoothed speed.
// Samples closer than 50ms apart are ignored.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0.05 {
		return
	}
	if dp := progress - m.lastProgress; dp > 0 {
		instant := dp / dt
		if m.speed > 0 {
			m.speed = 0.7*m.speed + 0.3*instant
		} else {
			m.speed = instant
		}
	}
	m.lastProgress = progress
	m.lastUpdate = now
}

// SetSummary stores the totals of a finished run.
func (m *MetricsModel) SetSummary(results []orchestration.SuiteResult) {
	s := orchestration.Summarize(results)
	m.summary = &s
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	colWidth := m.width - 4
	twoCols := m.width >= 60
	if twoCols {
		colWidth = (m.width - 6) / 2
	}

	cells := []string{
		formatMetricCol("Memory:", format.FormatBytes(m.alloc), colWidth),
		formatMetricCol("Heap:", format.FormatBytes(m.heapInuse), colWidth),
		formatMetricCol("GC Runs:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Speed:", fmt.Sprintf("%.1f%%/s", m.speed*100), colWidth),
	}
	if m.summary != nil {
		cells = append(cells,
			formatMetricCol("Passed:", fmt.Sprintf("%d", m.summary.Passed), colWidth),
			formatMetricCol("Failed:", fmt.Sprintf("%d", m.summary.Failed+m.summary.Canceled), colWidth),
			formatMetricCol("Trials:", format.FormatCount(m.summary.Trials), colWidth),
			formatMetricCol("Checked:", format.FormatCount(m.summary.Ops), colWidth),
		)
	}

	var rows strings.Builder
	rows.WriteString(" " + titleStyle.Render("Metrics"))
	step := 1
	if twoCols {
		step = 2
	}
	for i := 0; i < len(cells); i += step {
		rows.WriteString("\n")
		rows.WriteString(strings.Join(cells[i:min(i+step, len(cells))], ""))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
