// Package ui holds the color themes shared by the line-oriented output and
// the dashboard. ANSI accessors such as ColorRed follow the active Theme;
// the dashboard reads the lipgloss palette from GetCurrentTUITheme.
//
// InitTheme honours --no-color and the NO_COLOR environment variable.
package ui
