package ui

// Color accessors read the active theme, so they return "" once colors are
// disabled by --no-color or NO_COLOR.

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks failures and mismatches.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks passing suites.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow marks durations and warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue marks suite names.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta marks seeds and digests.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan marks environment details.
func ColorCyan() string { return GetCurrentTheme().Secondary }

func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
