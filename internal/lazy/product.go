package lazy

import (
	"iter"

	"github.com/mjakub/bignum/internal/vec32"
)

// ProductGenerator yields the words of A * B by convolution.
type ProductGenerator struct {
	A, B []vec32.Word
}

// Begin returns a cursor on the least significant word of the product.
func (g ProductGenerator) Begin() *ProductCursor {
	c := &ProductCursor{gen: g, done: true}
	if len(g.A) == 0 || len(g.B) == 0 {
		return c
	}
	c.aEnd, c.bEnd = 1, 1
	c.accum.AddProduct(g.A[0], g.B[0])
	c.value = c.accum.Shr32()
	c.done = false
	c.advance()
	return c
}

// End returns the exhausted cursor.
func (g ProductGenerator) End() *ProductCursor {
	na, nb := len(g.A), len(g.B)
	return &ProductCursor{gen: g, aStart: na, aEnd: na, bStart: nb, bEnd: nb, done: true}
}

// Words iterates over the words of the product.
func (g ProductGenerator) Words() iter.Seq[vec32.Word] { return Words(g.Begin()) }

// Collect returns the product as a canonical vector.
func (g ProductGenerator) Collect() []vec32.Word { return Collect(g.Begin()) }

// ProductState is the comparable position of a ProductCursor.
type ProductState struct {
	AStart, AEnd int
	BStart, BEnd int
	Accum        vec32.Uint128
	Value        vec32.Word
	Done         bool
}

// ProductCursor walks the words of a ProductGenerator.
//
// Word k of the product is formed from a[i]*b[j] with i+j == k. The
// half-open windows [aStart, aEnd) and [bStart, bEnd) always have equal
// length; a is read forward across its window while b is read backward
// across its own.
type ProductCursor struct {
	gen          ProductGenerator
	aStart, aEnd int
	bStart, bEnd int
	accum        vec32.Uint128
	value        vec32.Word
	done         bool
}

var _ Cursor = (*ProductCursor)(nil)

// advance moves both windows to the next convolution and reports whether
// the convolutions are exhausted. Windows grow while both operands have
// words left, slide while only one does, then shrink until empty.
func (c *ProductCursor) advance() bool {
	aCanGrow := c.aEnd < len(c.gen.A)
	bCanGrow := c.bEnd < len(c.gen.B)
	switch {
	case aCanGrow && bCanGrow:
		c.aEnd++
		c.bEnd++
	case aCanGrow:
		c.aEnd++
		c.aStart++
	case bCanGrow:
		c.bEnd++
		c.bStart++
	case c.aStart != c.aEnd:
		c.aStart++
		c.bStart++
	default:
		return true
	}
	return false
}

// Value returns the current product word, or 0 at the end.
func (c *ProductCursor) Value() vec32.Word { return c.value }

// Done reports whether every word of the product has been produced.
func (c *ProductCursor) Done() bool { return c.done }

// Next advances the convolution by one column. It does nothing on an end
// cursor.
func (c *ProductCursor) Next() {
	if c.done {
		c.value = 0
		return
	}
	j := c.bEnd - 1
	for i := c.aStart; i < c.aEnd; i++ {
		c.accum.AddProduct(c.gen.A[i], c.gen.B[j])
		j--
	}
	c.value = c.accum.Shr32()
	if c.advance() {
		c.done = c.accum.IsZero() && c.value == 0
	}
}

// State returns a snapshot of the cursor position.
func (c *ProductCursor) State() ProductState {
	return ProductState{
		AStart: c.aStart, AEnd: c.aEnd,
		BStart: c.bStart, BEnd: c.bEnd,
		Accum: c.accum, Value: c.value, Done: c.done,
	}
}

// Equal reports whether c and o are both exhausted, or read the same
// operands and hold the same state.
func (c *ProductCursor) Equal(o *ProductCursor) bool {
	if c.done != o.done {
		return false
	}
	return c.done || (sameSlice(c.gen.A, o.gen.A) && sameSlice(c.gen.B, o.gen.B) && c.State() == o.State())
}
