package vec32

// MulVecByWord returns a * w as a new vector.
func MulVecByWord(a []Word, w Word) []Word {
	if w == 0 || len(a) == 0 {
		return nil
	}
	z := make([]Word, len(a), len(a)+1)
	var carry uint64
	for i, x := range a {
		p := uint64(x)*uint64(w) + carry
		z[i] = Word(p)
		carry = p >> WordBits
	}
	if carry != 0 {
		z = append(z, Word(carry))
	}
	return z
}

// ScaleByWord multiplies v by w in place. A zero w clears v; w == 1 leaves
// it untouched.
func ScaleByWord(v []Word, w Word) []Word {
	switch w {
	case 0:
		return v[:0]
	case 1:
		return v
	}
	var carry uint64
	for i, x := range v {
		p := uint64(x)*uint64(w) + carry
		v[i] = Word(p)
		carry = p >> WordBits
	}
	if carry != 0 {
		v = append(v, Word(carry))
	}
	return v
}

// MulOrderedOldFashioned returns a * b using the schoolbook method. It
// requires len(a) <= len(b) so the inner loop runs over the shorter operand.
func MulOrderedOldFashioned(a, b []Word) []Word {
	if debugChecks {
		assertf(len(a) <= len(b), "MulOrderedOldFashioned", "len(a)=%d > len(b)=%d", len(a), len(b))
	}
	if len(a) == 0 {
		return nil
	}
	z := make([]Word, len(a)+len(b))
	for j, y := range b {
		if y == 0 {
			continue
		}
		var carry uint64
		for i, x := range a {
			// (2^32-1)^2 + 2*(2^32-1) == 2^64-1, so p cannot overflow.
			p := uint64(x)*uint64(y) + uint64(z[i+j]) + carry
			z[i+j] = Word(p)
			carry = p >> WordBits
		}
		z[j+len(a)] = Word(carry)
	}
	return Normalize(z)
}

// MulOldFashioned returns a * b using the schoolbook method.
func MulOldFashioned(a, b []Word) []Word {
	if len(a) <= len(b) {
		return MulOrderedOldFashioned(a, b)
	}
	return MulOrderedOldFashioned(b, a)
}

// MulOrdered returns a * b by convolution. It requires len(a) <= len(b).
//
// Output word k is the low word of a 128-bit accumulator holding the carry
// from word k-1 plus the sum of a[i]*b[k-i] over the valid i. The valid range
// grows while k < len(a), stays len(a) wide while k < len(b), and shrinks
// until k == len(a)+len(b)-2. Whatever remains in the accumulator after the
// last convolution becomes the top words of the product.
func MulOrdered(a, b []Word) []Word {
	if debugChecks {
		assertf(len(a) <= len(b), "MulOrdered", "len(a)=%d > len(b)=%d", len(a), len(b))
	}
	na, nb := len(a), len(b)
	if na == 0 {
		return nil
	}
	z := make([]Word, 0, na+nb)
	var acc Uint128

	// growing
	for k := 0; k < na; k++ {
		for i := 0; i <= k; i++ {
			acc.AddProduct(a[i], b[k-i])
		}
		z = append(z, acc.Shr32())
	}
	// plateau
	for k := na; k < nb; k++ {
		for i := 0; i < na; i++ {
			acc.AddProduct(a[i], b[k-i])
		}
		z = append(z, acc.Shr32())
	}
	// shrinking
	for k := nb; k < na+nb-1; k++ {
		for i := k - nb + 1; i < na; i++ {
			acc.AddProduct(a[i], b[k-i])
		}
		z = append(z, acc.Shr32())
	}
	for !acc.IsZero() {
		z = append(z, acc.Shr32())
	}
	return Normalize(z)
}

// Mul returns a * b.
func Mul(a, b []Word) []Word {
	if len(a) <= len(b) {
		return MulOrdered(a, b)
	}
	return MulOrdered(b, a)
}

// ScaleBy multiplies v by m, reusing v's storage for the product.
func ScaleBy(v, m []Word) []Word {
	p := Mul(v, m)
	return append(v[:0], p...)
}

// SubProductAtIndex computes r -= (d*q)<<(32*index) in place and normalizes
// r. The multiply and the subtraction run in one pass so no product vector
// is allocated. r must not be smaller than the shifted product.
func SubProductAtIndex(r []Word, index int, d []Word, q Word) []Word {
	if q == 0 || len(d) == 0 {
		return r
	}
	if debugChecks {
		assertf(!LessThanAtIndex(r, index, MulVecByWord(d, q)), "SubProductAtIndex",
			"%s smaller than %s*%#x shifted by %d", Format(r), Format(d), q, index)
	}
	var (
		carry  uint64
		borrow Word
	)
	for i, w := range d {
		p := uint64(w)*uint64(q) + carry
		carry = p >> WordBits
		r[index+i], borrow = subWord(r[index+i], Word(p), borrow)
	}
	// The product's top word and any borrow continue upward.
	top := Word(carry)
	for j := index + len(d); top != 0 || borrow != 0; j++ {
		r[j], borrow = subWord(r[j], top, borrow)
		top = 0
	}
	return Normalize(r)
}
