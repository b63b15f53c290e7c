package lazy

import (
	"iter"
	"math/bits"

	"github.com/mjakub/bignum/internal/vec32"
)

// ByWordState is the comparable position of a cursor over a vector and a
// single word.
type ByWordState struct {
	Index        int
	Accum, Value vec32.Word
	Done         bool
}

// ─── product by word ─────────────────────────────────────────────────────────

// ProductByWordGenerator yields the words of A * B for a single word B.
type ProductByWordGenerator struct {
	A []vec32.Word
	B vec32.Word
}

// Begin returns a cursor on the least significant word of the product.
func (g ProductByWordGenerator) Begin() *ProductByWordCursor {
	c := &ProductByWordCursor{gen: g, done: true}
	if len(g.A) == 0 || g.B == 0 {
		return c
	}
	c.done = false
	c.Next()
	return c
}

// End returns the exhausted cursor.
func (g ProductByWordGenerator) End() *ProductByWordCursor {
	return &ProductByWordCursor{gen: g, index: len(g.A), done: true}
}

// Words iterates over the words of the product.
func (g ProductByWordGenerator) Words() iter.Seq[vec32.Word] { return Words(g.Begin()) }

// Collect returns the product as a canonical vector.
func (g ProductByWordGenerator) Collect() []vec32.Word { return Collect(g.Begin()) }

// ProductByWordCursor walks the words of a ProductByWordGenerator.
type ProductByWordCursor struct {
	gen   ProductByWordGenerator
	index int
	accum vec32.Word
	value vec32.Word
	done  bool
}

var _ Cursor = (*ProductByWordCursor)(nil)

// Value returns the current word of a*b, or 0 at the end.
func (c *ProductByWordCursor) Value() vec32.Word { return c.value }

// Done reports whether the carry-out word has been passed.
func (c *ProductByWordCursor) Done() bool { return c.done }

// Next moves to the next word. It does nothing on an end cursor.
func (c *ProductByWordCursor) Next() {
	if c.done {
		return
	}
	if c.index < len(c.gen.A) {
		hi, lo := bits.Mul32(c.gen.A[c.index], c.gen.B)
		var carry vec32.Word
		c.value, carry = bits.Add32(lo, c.accum, 0)
		c.accum = hi + carry
		c.index++
		return
	}
	// The overflow word, if any, then the end.
	c.value = c.accum
	c.accum = 0
	c.done = c.value == 0
}

// State returns a snapshot of the cursor position.
func (c *ProductByWordCursor) State() ByWordState {
	return ByWordState{Index: c.index, Accum: c.accum, Value: c.value, Done: c.done}
}

// Equal reports whether c and o are both exhausted, or read the same
// operands and hold the same state.
func (c *ProductByWordCursor) Equal(o *ProductByWordCursor) bool {
	if c.done != o.done {
		return false
	}
	return c.done || (sameSlice(c.gen.A, o.gen.A) && c.gen.B == o.gen.B && c.State() == o.State())
}

// ─── sum by word ─────────────────────────────────────────────────────────────

// SumByWordGenerator yields the words of A + B for a single word B.
type SumByWordGenerator struct {
	A []vec32.Word
	B vec32.Word
}

// Begin returns a cursor on the least significant word of the sum.
func (g SumByWordGenerator) Begin() *SumByWordCursor {
	c := &SumByWordCursor{gen: g}
	if len(g.A) == 0 {
		c.value = g.B
		c.done = g.B == 0
		return c
	}
	c.value, c.accum = bits.Add32(g.A[0], g.B, 0)
	c.index = 1
	c.done = len(g.A) == 1 && c.value == 0 && c.accum == 0
	return c
}

// End returns the exhausted cursor.
func (g SumByWordGenerator) End() *SumByWordCursor {
	return &SumByWordCursor{gen: g, index: len(g.A), done: true}
}

// Words iterates over the words of the sum.
func (g SumByWordGenerator) Words() iter.Seq[vec32.Word] { return Words(g.Begin()) }

// Collect returns the sum as a canonical vector.
func (g SumByWordGenerator) Collect() []vec32.Word { return Collect(g.Begin()) }

// SumByWordCursor walks the words of a SumByWordGenerator.
type SumByWordCursor struct {
	gen   SumByWordGenerator
	index int
	accum vec32.Word
	value vec32.Word
	done  bool
}

var _ Cursor = (*SumByWordCursor)(nil)

// Value returns the current word of a+b, or 0 at the end.
func (c *SumByWordCursor) Value() vec32.Word { return c.value }

// Done reports whether the carry-out word has been passed.
func (c *SumByWordCursor) Done() bool { return c.done }

// Next moves to the next word. It does nothing on an end cursor.
func (c *SumByWordCursor) Next() {
	if c.done {
		return
	}
	if c.index < len(c.gen.A) {
		c.value, c.accum = bits.Add32(c.gen.A[c.index], c.accum, 0)
		c.index++
		return
	}
	c.value = c.accum
	c.accum = 0
	c.done = c.value == 0
}

// State returns a snapshot of the cursor position.
func (c *SumByWordCursor) State() ByWordState {
	return ByWordState{Index: c.index, Accum: c.accum, Value: c.value, Done: c.done}
}

// Equal reports whether c and o are both exhausted, or read the same
// operands and hold the same state.
func (c *SumByWordCursor) Equal(o *SumByWordCursor) bool {
	if c.done != o.done {
		return false
	}
	return c.done || (sameSlice(c.gen.A, o.gen.A) && c.gen.B == o.gen.B && c.State() == o.State())
}
