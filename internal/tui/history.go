package tui

import (
	"slices"
	"strings"
)

// History holds the most recent samples of one dashboard series, oldest
// first. Pushing past the limit drops the oldest sample.
type History struct {
	values []float64
	limit  int
}

// NewHistory returns an empty history holding at most limit samples.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 1)}
}

func (h *History) Push(v float64) {
	h.values = append(h.values, v)
	if over := len(h.values) - h.limit; over > 0 {
		h.values = append(h.values[:0], h.values[over:]...)
	}
}

func (h *History) Len() int { return len(h.values) }

func (h *History) Cap() int { return h.limit }

// Latest returns the newest sample, or 0 when empty.
func (h *History) Latest() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[len(h.values)-1]
}

// Values returns a copy of the samples, or nil when empty.
func (h *History) Values() []float64 {
	if len(h.values) == 0 {
		return nil
	}
	return slices.Clone(h.values)
}

// SetCap changes the limit, keeping the newest samples that still fit.
func (h *History) SetCap(limit int) {
	h.limit = max(limit, 1)
	if over := len(h.values) - h.limit; over > 0 {
		h.values = append(h.values[:0], h.values[over:]...)
	}
}

func (h *History) Clear() { h.values = h.values[:0] }

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one block per percentage sample.
func Sparkline(values []float64) string {
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, v := range values {
		b.WriteRune(sparkBlocks[min(int(clampPercent(v)/100*float64(top)), top)])
	}
	return b.String()
}

const brailleBlank = 0x2800

// brailleBit[col][row] is the dot bit of a braille cell, two dots wide and
// four tall.
var brailleBit = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// BrailleChart plots percentage samples as rows of braille cells, one dot
// column per sample with the newest at the right edge. Older samples that
// do not fit are dropped.
func BrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}
	dotsWide, dotsTall := width*2, rows*4
	if len(values) > dotsWide {
		values = values[len(values)-dotsWide:]
	}

	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(string(rune(brailleBlank)), width))
	}
	offset := dotsWide - len(values)
	for i, v := range values {
		x := offset + i
		y := dotsTall - 1 - int(clampPercent(v)/100*float64(dotsTall-1))
		cells[y/4][x/2] |= brailleBit[x%2][y%4]
	}

	out := make([]string, rows)
	for r, row := range cells {
		out[r] = string(row)
	}
	return out
}
