package lazy

import (
	"iter"

	"github.com/mjakub/bignum/internal/vec32"
)

// Cursor is a position in the word sequence of a generator.
type Cursor interface {
	// Value returns the current word, or zero once the cursor is done.
	Value() vec32.Word
	// Next advances to the following word. It has no effect once done.
	Next()
	// Done reports whether every word has been produced.
	Done() bool
}

// Collect drains c into a new vector.
func Collect(c Cursor) []vec32.Word {
	var out []vec32.Word
	for ; !c.Done(); c.Next() {
		out = append(out, c.Value())
	}
	return out
}

// Words returns an iterator over the remaining words of c. Iterating
// advances c.
func Words(c Cursor) iter.Seq[vec32.Word] {
	return func(yield func(vec32.Word) bool) {
		for ; !c.Done(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// sameSlice reports whether a and b view the same words of the same array.
func sameSlice(a, b []vec32.Word) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
