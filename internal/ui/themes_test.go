package ui

import (
	"testing"
)

func TestInitThemeNoColor(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	InitTheme(true)
	for name, got := range map[string]string{
		"reset": ColorReset(), "red": ColorRed(), "green": ColorGreen(),
		"bold": ColorBold(), "underline": ColorUnderline(),
	} {
		if got != "" {
			t.Errorf("%s = %q with colors disabled", name, got)
		}
	}
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("TUI theme should drop colors with the ANSI theme")
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != NoColorTheme.Name {
		t.Errorf("theme = %q, want %q", GetCurrentTheme().Name, NoColorTheme.Name)
	}
}

func TestSetTheme(t *testing.T) {
	prev := GetCurrentTheme()
	defer SetCurrentTheme(prev)

	tests := []struct {
		name string
		want Theme
	}{
		{"dark", DarkTheme},
		{"light", LightTheme},
		{"orange", OrangeTheme},
		{"none", NoColorTheme},
		{"unknown", DarkTheme},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme(); got != tt.want {
			t.Errorf("SetTheme(%q) selected %q", tt.name, got.Name)
		}
		if ColorRed() != tt.want.Error {
			t.Errorf("ColorRed() under %q does not follow the theme", tt.name)
		}
	}
}
