// Package lazy produces the words of a sum or product one at a time, least
// significant first, without allocating the result vector.
//
// Each generator describes an operation over word-vectors borrowed from the
// caller. Begin returns a cursor positioned on the first result word and End
// returns the exhausted cursor. The usual loop is
//
//	for c := g.Begin(); !c.Done(); c.Next() {
//		use(c.Value())
//	}
//
// A cursor never yields a most-significant zero word, so collecting a
// generator produces a canonical vector equal to the eager result from
// package vec32. An exhausted cursor reports zero from Value and ignores
// Next.
//
// Cursors compare structurally with Equal: two exhausted cursors are equal,
// and two live cursors are equal when they read the same input slices and
// hold the same position and accumulator state. This lets independently
// advanced cursors be checked against each other.
//
// The operand slices must not change while a cursor over them is in use.
package lazy
