package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/harness"
	"github.com/mjakub/bignum/internal/orchestration"
)

type suiteStatus int

const (
	statusPending suiteStatus = iota
	statusRunning
	statusPassed
	statusFailed
	statusInterrupted
)

// Column widths for the suite table (shared between header and rows).
const (
	colWidthName   = 18
	colWidthKind   = 6
	colWidthPct    = 7
	colWidthDur    = 10
	colWidthStatus = 6
	minBarWidth    = 8
)

// SuitesModel is the per-suite table at the top of the dashboard.
type SuitesModel struct {
	names      []string
	kinds      []harness.Kind
	progresses []float64
	durations  []time.Duration
	statuses   []suiteStatus
	width      int
}

// NewSuitesModel creates a table with one pending row per suite.
func NewSuitesModel(suites []harness.Suite) SuitesModel {
	m := SuitesModel{
		names: make([]string, len(suites)),
		kinds: make([]harness.Kind, len(suites)),
	}
	for i, s := range suites {
		m.names[i] = s.Name()
		m.kinds[i] = s.Kind()
	}
	m.Reset()
	return m
}

// Reset marks every suite pending.
func (m *SuitesModel) Reset() {
	n := len(m.names)
	m.progresses = make([]float64, n)
	m.durations = make([]time.Duration, n)
	m.statuses = make([]suiteStatus, n)
}

// SetWidth updates the available width.
func (m *SuitesModel) SetWidth(w int) { m.width = w }

// Height is the number of lines View renders.
func (m SuitesModel) Height() int { return len(m.names) + 4 }

// UpdateProgress moves a suite's bar. Progress updates are indexed in the
// order the suites were given to the run.
func (m *SuitesModel) UpdateProgress(index int, value float64) {
	if index < 0 || index >= len(m.names) {
		return
	}
	m.progresses[index] = value
	if m.statuses[index] == statusPending {
		m.statuses[index] = statusRunning
	}
}

// SetResults fills in the final state of every reported suite.
func (m *SuitesModel) SetResults(results []orchestration.SuiteResult) {
	for _, r := range results {
		i := m.indexOf(r.Name)
		if i < 0 {
			continue
		}
		m.durations[i] = r.Duration
		switch {
		case r.Err != nil && apperrors.IsContextError(r.Err):
			m.statuses[i] = statusInterrupted
		case r.Err != nil, !r.Report.Passed():
			m.statuses[i] = statusFailed
		default:
			m.statuses[i] = statusPassed
			m.progresses[i] = 1
		}
	}
}

func (m SuitesModel) indexOf(name string) int {
	for i, n := range m.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (m SuitesModel) barWidth() int {
	fixed := 2 + colWidthName + 1 + colWidthKind + 1 + 1 + colWidthPct + 1 + colWidthDur + 1 + colWidthStatus + 4
	return max(m.width-fixed, minBarWidth)
}

// View renders the table.
func (m SuitesModel) View() string {
	var b strings.Builder
	bw := m.barWidth()

	colName := lipgloss.NewStyle().Width(colWidthName)
	colKind := lipgloss.NewStyle().Width(colWidthKind)
	colBar := lipgloss.NewStyle().Width(bw)
	colPct := lipgloss.NewStyle().Width(colWidthPct).Align(lipgloss.Right)
	colDur := lipgloss.NewStyle().Width(colWidthDur).Align(lipgloss.Right)
	colStatus := lipgloss.NewStyle().Width(colWidthStatus).Align(lipgloss.Center)

	b.WriteString(" " + titleStyle.Render("Suites") + "\n")
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		" ",
		colName.Render("Suite"), " ",
		colKind.Render("Kind"), " ",
		colBar.Render("Progress"), " ",
		colPct.Render("%"), " ",
		colDur.Render("Duration"), " ",
		colStatus.Render("Status"),
	)
	b.WriteString(metricLabelStyle.Render(header))

	for i, name := range m.names {
		dur := "-"
		switch m.statuses[i] {
		case statusRunning:
			dur = "..."
		case statusPassed, statusFailed, statusInterrupted:
			dur = formatDuration(m.durations[i])
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			" ",
			colName.Render(truncateString(name, colWidthName)), " ",
			colKind.Render(m.kinds[i].String()), " ",
			renderProgressBar(m.progresses[i], bw), " ",
			colPct.Render(fmt.Sprintf("%.1f%%", m.progresses[i]*100)), " ",
			colDur.Render(dur), " ",
			m.renderStatus(colStatus, m.statuses[i]),
		))
	}

	return panelStyle.Width(max(m.width-2, 0)).Render(b.String())
}

func (m SuitesModel) renderStatus(col lipgloss.Style, s suiteStatus) string {
	switch s {
	case statusRunning:
		return col.Inherit(logSuiteStyle).Render("RUN")
	case statusPassed:
		return col.Inherit(statusRunningStyle).Render("OK")
	case statusFailed:
		return col.Inherit(statusErrorStyle).Render("FAIL")
	case statusInterrupted:
		return col.Inherit(statusPausedStyle).Render("STOP")
	default:
		return col.Inherit(metricLabelStyle).Render("WAIT")
	}
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// renderProgressBar renders a bar of exactly width cells.
func renderProgressBar(progress float64, width int) string {
	filled := min(max(int(progress*float64(width)), 0), width)
	bar := chartBarStyle.Render(strings.Repeat("█", filled)) + chartEmptyStyle.Render(strings.Repeat("░", width-filled))
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// formatDuration formats a duration for the narrow table column.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}
