package lazy

import (
	"math/bits"

	"github.com/mjakub/bignum/internal/vec32"
)

// ReverseBegin returns a cursor over the words of A + B, most significant
// first.
//
// Whether a word of the sum receives a carry depends only on the run of
// words below it whose carry-free sum is 0xFFFFFFFF, and on whether the word
// ending that run overflowed. The cursor scans each run once, then emits it
// as a block of identical words, so every word of A is read once.
func (g SumByWordGenerator) ReverseBegin() *ReverseSumByWordCursor {
	c := &ReverseSumByWordCursor{gen: g, boundary: -1}
	n := len(g.A)
	if n == 0 {
		c.value = g.B
		c.done = g.B == 0
		return c
	}
	run, boundary, sum, carry := c.scan(n - 1)
	c.boundary, c.boundarySum = boundary, sum
	c.runWord = vec32.MaxWord + carry
	switch {
	case carry != 0:
		// The carry leaves the top word and becomes a new one.
		c.value = 1
		c.run = run
	case run > 0:
		c.value = c.runWord
		c.run = run - 1
	default:
		c.emitBoundary()
	}
	return c
}

// ReverseEnd returns the exhausted reverse cursor.
func (g SumByWordGenerator) ReverseEnd() *ReverseSumByWordCursor {
	return &ReverseSumByWordCursor{gen: g, boundary: -1, done: true}
}

// ReverseState is the comparable position of a ReverseSumByWordCursor.
type ReverseState struct {
	Run         int
	RunWord     vec32.Word
	Boundary    int
	BoundarySum vec32.Word
	Value       vec32.Word
	Done        bool
}

// ReverseSumByWordCursor walks the words of a SumByWordGenerator from the
// most significant end.
type ReverseSumByWordCursor struct {
	gen SumByWordGenerator

	run     int        // words of the current run still to emit
	runWord vec32.Word // 0xFFFFFFFF, or 0 when the run carries
	// boundary is the index of the word that ended the run, or -1 once every
	// word of A has been scanned. boundarySum is its carry-free sum.
	boundary    int
	boundarySum vec32.Word

	value vec32.Word
	done  bool
}

var _ Cursor = (*ReverseSumByWordCursor)(nil)

// sumAt returns the carry-free sum at index i and its carry out.
func (c *ReverseSumByWordCursor) sumAt(i int) (sum, carry vec32.Word) {
	if i == 0 {
		return bits.Add32(c.gen.A[0], c.gen.B, 0)
	}
	return c.gen.A[i], 0
}

// scan walks down from index from over words whose carry-free sum is
// 0xFFFFFFFF. It returns the run length, the index that ended the run (-1
// when the run reaches past index 0), that word's carry-free sum, and its
// carry out, which is the carry through the whole run.
func (c *ReverseSumByWordCursor) scan(from int) (run, boundary int, sum, carry vec32.Word) {
	for i := from; i >= 0; i-- {
		s, cy := c.sumAt(i)
		if s != vec32.MaxWord {
			return run, i, s, cy
		}
		run++
	}
	return run, -1, 0, 0
}

// emitBoundary produces the word at the current boundary and scans the run
// beneath it.
func (c *ReverseSumByWordCursor) emitBoundary() {
	if c.boundary < 0 {
		c.value = 0
		c.done = true
		return
	}
	run, boundary, sum, carry := c.scan(c.boundary - 1)
	c.value = c.boundarySum + carry
	c.run = run
	c.runWord = vec32.MaxWord + carry
	c.boundary, c.boundarySum = boundary, sum
}

// Value returns the current word, most significant first, or 0 at the end.
func (c *ReverseSumByWordCursor) Value() vec32.Word { return c.value }

// Done reports whether the least significant word has been passed.
func (c *ReverseSumByWordCursor) Done() bool { return c.done }

// Next steps one word toward the least significant end. Inside a run of
// repeated words it only counts the run down. It does nothing on an end
// cursor.
func (c *ReverseSumByWordCursor) Next() {
	switch {
	case c.done:
	case c.run > 0:
		c.value = c.runWord
		c.run--
	default:
		c.emitBoundary()
	}
}

// State returns a snapshot of the cursor position.
func (c *ReverseSumByWordCursor) State() ReverseState {
	return ReverseState{
		Run: c.run, RunWord: c.runWord,
		Boundary: c.boundary, BoundarySum: c.boundarySum,
		Value: c.value, Done: c.done,
	}
}

// Equal reports whether c and o are both exhausted, or read the same
// operands and hold the same state.
func (c *ReverseSumByWordCursor) Equal(o *ReverseSumByWordCursor) bool {
	if c.done != o.done {
		return false
	}
	return c.done || (sameSlice(c.gen.A, o.gen.A) && c.gen.B == o.gen.B && c.State() == o.State())
}
