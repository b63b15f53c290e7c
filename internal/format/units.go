// Package format renders sizes, counts, durations and progress for the CLI
// and the dashboard.
package format

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count with binary units, e.g. "1.5 MiB".
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

// FormatCount renders an integer with thousands separators, e.g. "100,000".
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatExecutionDuration keeps sub-second timings in whole µs or ms and
// rounds longer ones to the millisecond, so suite tables stay narrow.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return d.Round(time.Millisecond).String()
}
