package lazy

import (
	"iter"
	"math/bits"

	"github.com/mjakub/bignum/internal/vec32"
)

// SumGenerator yields the words of A + B, plus one when CarryIn is set.
type SumGenerator struct {
	A, B    []vec32.Word
	CarryIn bool
}

// Begin returns a cursor on the least significant word of the sum.
func (g SumGenerator) Begin() *SumCursor {
	c := &SumCursor{gen: g}
	if g.CarryIn {
		c.accum = 1
	}
	c.step()
	return c
}

// End returns the exhausted cursor.
func (g SumGenerator) End() *SumCursor {
	return &SumCursor{gen: g, ai: len(g.A), bi: len(g.B), done: true}
}

// Words iterates over the words of the sum.
func (g SumGenerator) Words() iter.Seq[vec32.Word] { return Words(g.Begin()) }

// Collect returns the sum as a canonical vector.
func (g SumGenerator) Collect() []vec32.Word { return Collect(g.Begin()) }

func (g SumGenerator) sameOperands(o SumGenerator) bool {
	return sameSlice(g.A, o.A) && sameSlice(g.B, o.B) && g.CarryIn == o.CarryIn
}

// SumState is the comparable position of a SumCursor.
type SumState struct {
	AIndex, BIndex int
	Accum, Value   vec32.Word
	Done           bool
}

// SumCursor walks the words of a SumGenerator.
type SumCursor struct {
	gen    SumGenerator
	ai, bi int
	accum  vec32.Word // carry into the next word, 0 or 1
	value  vec32.Word
	done   bool
}

var _ Cursor = (*SumCursor)(nil)

// step consumes one word of each operand that has words left.
func (c *SumCursor) step() {
	var aw, bw vec32.Word
	if c.ai < len(c.gen.A) {
		aw = c.gen.A[c.ai]
		c.ai++
	}
	if c.bi < len(c.gen.B) {
		bw = c.gen.B[c.bi]
		c.bi++
	}
	c.value, c.accum = bits.Add32(aw, bw, c.accum)
	c.done = c.ai == len(c.gen.A) && c.bi == len(c.gen.B) && c.value == 0 && c.accum == 0
}

// Value returns the current sum word, or 0 at the end.
func (c *SumCursor) Value() vec32.Word { return c.value }

// Done reports whether the cursor has passed the final carry word.
func (c *SumCursor) Done() bool { return c.done }

// Next moves to the next sum word. It does nothing on an end cursor.
func (c *SumCursor) Next() {
	if !c.done {
		c.step()
	}
}

// State returns a snapshot of the cursor position.
func (c *SumCursor) State() SumState {
	return SumState{AIndex: c.ai, BIndex: c.bi, Accum: c.accum, Value: c.value, Done: c.done}
}

// Equal reports whether c and o are both exhausted, or read the same
// operands and hold the same state.
func (c *SumCursor) Equal(o *SumCursor) bool {
	if c.done != o.done {
		return false
	}
	return c.done || (c.gen.sameOperands(o.gen) && c.State() == o.State())
}
