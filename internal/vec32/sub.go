package vec32

import "slices"

// DecrementByWord subtracts delta from v in place and normalizes the result.
// v must not be smaller than delta.
func DecrementByWord(v []Word, delta Word) []Word {
	if delta == 0 {
		return v
	}
	if debugChecks {
		assertf(len(v) > 1 || (len(v) == 1 && v[0] >= delta),
			"DecrementByWord", "minuend %s smaller than %#x", Format(v), delta)
	}
	var borrow Word
	v[0], borrow = subWord(v[0], delta, 0)
	for i := 1; borrow != 0; i++ {
		v[i], borrow = subWord(v[i], 0, borrow)
	}
	return Normalize(v)
}

// DecrementBy subtracts delta from v in place and normalizes the result.
// v must not be smaller than delta.
func DecrementBy(v, delta []Word) []Word {
	return DecrementAtIndex(v, 0, delta)
}

// DecrementAtIndex subtracts delta<<(32*index) from v in place and normalizes
// the result. v must not be smaller than the shifted delta; a violation
// panics in debug builds and indexes past v otherwise.
func DecrementAtIndex(v []Word, index int, delta []Word) []Word {
	if len(delta) == 0 {
		return v
	}
	if debugChecks {
		assertf(!LessThanAtIndex(v, index, delta), "DecrementAtIndex",
			"minuend %s smaller than %s shifted by %d", Format(v), Format(delta), index)
	}
	var borrow Word
	for i, w := range delta {
		v[index+i], borrow = subWord(v[index+i], w, borrow)
	}
	for j := index + len(delta); borrow != 0; j++ {
		v[j], borrow = subWord(v[j], 0, borrow)
	}
	return Normalize(v)
}

// Sub returns a - b as a new vector. a must not be smaller than b.
func Sub(a, b []Word) []Word {
	return DecrementBy(slices.Clone(a), b)
}

// SymDiff returns |a - b| and whether a <= b.
func SymDiff(a, b []Word) (diff []Word, aLessOrEqual bool) {
	if LessThanOrEqual(a, b) {
		return Sub(b, a), true
	}
	return Sub(a, b), false
}
