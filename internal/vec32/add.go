package vec32

import "slices"

// AddOrdered returns a + b. It requires len(a) <= len(b); Add chooses the
// order for callers that do not know it.
func AddOrdered(a, b []Word) []Word {
	if debugChecks {
		assertf(len(a) <= len(b), "AddOrdered", "len(a)=%d > len(b)=%d", len(a), len(b))
	}
	return addOrdered(a, b, 0)
}

// addOrdered sums a and b plus an incoming carry of 0 or 1. The result has
// len(b) or len(b)+1 words.
func addOrdered(a, b []Word, carry Word) []Word {
	z := make([]Word, len(b), len(b)+1)
	i := 0
	for ; i < len(a); i++ {
		z[i], carry = addWord(a[i], b[i], carry)
	}
	for ; i < len(b); i++ {
		z[i], carry = addWord(b[i], 0, carry)
	}
	if carry != 0 {
		z = append(z, carry)
	}
	return z
}

// Add returns a + b.
func Add(a, b []Word) []Word {
	if len(a) <= len(b) {
		return AddOrdered(a, b)
	}
	return AddOrdered(b, a)
}

// AddWithCarry returns a + b + 1 when carryIn is set, and a + b otherwise.
func AddWithCarry(a, b []Word, carryIn bool) []Word {
	var c Word
	if carryIn {
		c = 1
	}
	if len(a) <= len(b) {
		return addOrdered(a, b, c)
	}
	return addOrdered(b, a, c)
}

// AddWord returns v + delta as a new vector.
func AddWord(v []Word, delta Word) []Word {
	if delta == 0 {
		return slices.Clone(v)
	}
	z := make([]Word, len(v), len(v)+1)
	carry := delta
	i := 0
	for ; i < len(v) && carry != 0; i++ {
		z[i], carry = addWord(v[i], carry, 0)
	}
	copy(z[i:], v[i:])
	if carry != 0 {
		z = append(z, carry)
	}
	return z
}

// IncrementByWord adds delta to v in place, growing v by one word if a carry
// escapes the most significant word.
func IncrementByWord(v []Word, delta Word) []Word {
	return IncrementAtIndexByWord(v, 0, delta)
}

// IncrementAtIndexByWord adds delta<<(32*index) to v in place. Words between
// the end of v and index are zero-filled when index lies beyond v.
func IncrementAtIndexByWord(v []Word, index int, delta Word) []Word {
	if delta == 0 {
		return v
	}
	v = zeroExtend(v, index)
	carry := delta
	i := index
	for ; i < len(v) && carry != 0; i++ {
		v[i], carry = addWord(v[i], carry, 0)
	}
	if carry != 0 {
		v = append(v, carry)
	}
	return v
}

// IncrementAtIndexByDword adds delta<<(32*index) to v in place, where delta
// spans two words. This is how single-word division accumulates a one or two
// word quotient contribution.
func IncrementAtIndexByDword(v []Word, index int, delta uint64) []Word {
	if delta == 0 {
		return v
	}
	v = zeroExtend(v, index)
	carry := delta
	i := index
	for ; i < len(v) && carry != 0; i++ {
		sum := uint64(v[i]) + carry&lowMask
		v[i] = Word(sum)
		carry = sum>>WordBits + carry>>WordBits
	}
	for carry != 0 {
		v = append(v, Word(carry))
		carry >>= WordBits
	}
	return v
}

// zeroExtend pads v with zero words until it has at least n words.
func zeroExtend(v []Word, n int) []Word {
	if len(v) >= n {
		return v
	}
	v = slices.Grow(v, n+2-len(v))
	for len(v) < n {
		v = append(v, 0)
	}
	return v
}
