package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mjakub/bignum/internal/format"
)

const (
	// sparklineWidth is the chart width taken by borders, the row label and
	// the trailing percentage of a sparkline row.
	sparklineWidth = 17
	// sparklineMinHeight is the panel height below which the CPU and MEM
	// rows are hidden.
	sparklineMinHeight = 10
	defaultHistory     = 60
)

// ChartModel plots the average progress of the run over time together with
// host CPU and memory sparklines.
type ChartModel struct {
	progressHistory *History
	cpuHistory      *History
	memHistory      *History
	averageProgress float64
	eta             time.Duration
	elapsed         time.Duration
	done            bool
	width           int
	height          int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{
		progressHistory: NewHistory(defaultHistory * 2),
		cpuHistory:      NewHistory(defaultHistory),
		memHistory:      NewHistory(defaultHistory),
	}
}

// SetSize updates the panel dimensions and resizes the histories to the
// columns available.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	if n := w - sparklineWidth; n > 0 {
		c.cpuHistory.SetCap(n)
		c.memHistory.SetCap(n)
	}
	if n := (w - 4) * 2; n > 0 {
		c.progressHistory.SetCap(n)
	}
}

// AddDataPoint records one aggregated progress update.
func (c *ChartModel) AddDataPoint(value, average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
	c.progressHistory.Push(average * 100)
}

// UpdateSysStats appends a host sample, in percent.
func (c *ChartModel) UpdateSysStats(cpu, mem float64) {
	c.cpuHistory.Push(cpu)
	c.memHistory.Push(mem)
}

// SetDone freezes the chart with the final elapsed time.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
}

// Reset clears every history for a new run.
func (c *ChartModel) Reset() {
	c.progressHistory.Clear()
	c.cpuHistory.Clear()
	c.memHistory.Clear()
	c.averageProgress = 0
	c.eta = 0
	c.elapsed = 0
	c.done = false
}

// renderProgressBar returns the overall bar, or "" when the panel is too
// narrow to hold one.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 14
	if barWidth < 4 {
		return ""
	}
	filled := min(max(int(c.averageProgress*float64(barWidth)), 0), barWidth)
	return "  " + chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %5.1f%%", c.averageProgress*100)
}

func (c ChartModel) renderSparkline(label string, buf *History, style func(...string) string) string {
	return fmt.Sprintf("  %s %s %5.1f%%",
		metricLabelStyle.Render(label),
		style(Sparkline(buf.Values())),
		buf.Latest())
}

// View renders the chart panel.
func (c ChartModel) View() string {
	inner := max(c.height-2, 1)
	showSys := c.height >= sparklineMinHeight

	lines := []string{" " + titleStyle.Render("Progress Chart")}
	rows := inner - 3
	if showSys {
		rows -= 2
	}
	for _, row := range BrailleChart(c.progressHistory.Values(), max(c.width-6, 0), rows) {
		lines = append(lines, "  "+chartBarStyle.Render(row))
	}
	if bar := c.renderProgressBar(); bar != "" {
		lines = append(lines, bar)
	}

	if c.done {
		lines = append(lines, "  "+metricLabelStyle.Render("Done in ")+metricValueStyle.Render(format.FormatExecutionDuration(c.elapsed)))
	} else {
		lines = append(lines, "  "+metricLabelStyle.Render("ETA: ")+metricValueStyle.Render(format.FormatETA(c.eta)))
	}

	if showSys {
		lines = append(lines,
			c.renderSparkline("CPU", c.cpuHistory, cpuSparklineStyle.Render),
			c.renderSparkline("MEM", c.memHistory, memSparklineStyle.Render),
		)
	}

	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(inner).
		Render(strings.Join(lines, "\n"))
}
