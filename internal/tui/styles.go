package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mjakub/bignum/internal/ui"
)

// Dashboard styles. They depend on the active ui theme, which the app picks
// after package init, so Run rebuilds them with initTUIStyles.
var (
	panelStyle, headerStyle, titleStyle lipgloss.Style
	versionStyle, elapsedStyle          lipgloss.Style

	logTimeStyle, logSuiteStyle, logProgressStyle lipgloss.Style
	logSuccessStyle, logErrorStyle                lipgloss.Style

	metricLabelStyle, metricValueStyle   lipgloss.Style
	chartBarStyle, chartEmptyStyle       lipgloss.Style
	cpuSparklineStyle, memSparklineStyle lipgloss.Style

	footerKeyStyle, footerDescStyle       lipgloss.Style
	statusRunningStyle, statusPausedStyle lipgloss.Style
	statusDoneStyle, statusErrorStyle     lipgloss.Style
)

func init() { initTUIStyles() }

func initTUIStyles() {
	t := ui.GetCurrentTUITheme()
	fg := func(c lipgloss.TerminalColor) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	bold := func(c lipgloss.TerminalColor) lipgloss.Style { return fg(c).Bold(true) }

	panelStyle = fg(t.Text).
		Background(t.Bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	headerStyle = bold(t.Accent).Background(t.Bg).Padding(0, 1)
	titleStyle = bold(t.Accent)
	versionStyle = fg(t.Dim)
	elapsedStyle = fg(t.Accent)

	logTimeStyle = fg(t.Dim)
	logSuiteStyle = fg(t.Info)
	logProgressStyle = fg(t.Accent)
	logSuccessStyle = fg(t.Success)
	logErrorStyle = fg(t.Error)

	metricLabelStyle = fg(t.Dim)
	metricValueStyle = bold(t.Accent)
	chartBarStyle = fg(t.Accent)
	chartEmptyStyle = fg(t.Dim)
	cpuSparklineStyle = fg(t.Accent)
	memSparklineStyle = fg(t.Warning)

	footerKeyStyle = bold(t.Accent)
	footerDescStyle = fg(t.Dim)
	statusRunningStyle = bold(t.Success)
	statusPausedStyle = bold(t.Warning)
	statusDoneStyle = bold(t.Accent)
	statusErrorStyle = bold(t.Error)
}
