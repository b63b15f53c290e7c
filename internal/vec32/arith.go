package vec32

import "math/bits"

// subWord returns x - y - borrow together with the outgoing borrow.
//
// The borrow is detected after the fact: with s = y + borrow, the wrapped
// difference x - s is at least x exactly when s exceeded x. The test must be
// >= rather than > because y == MaxWord with borrow == 1 makes s wrap to zero.
// A (0, 0) subtrahend leaves x untouched and never borrows.
func subWord(x, y, borrow Word) (diff, borrowOut Word) {
	if y == 0 && borrow == 0 {
		return x, 0
	}
	diff = x - (y + borrow)
	if diff >= x {
		return diff, 1
	}
	return diff, 0
}

// addWord returns x + y + carry and the outgoing carry.
func addWord(x, y, carry Word) (sum, carryOut Word) {
	return bits.Add32(x, y, carry)
}

// dword joins two words into a 64-bit value.
func dword(hi, lo Word) uint64 {
	return uint64(hi)<<WordBits | uint64(lo)
}

// Uint128 is the double-word accumulator used by convolution multiply.
// Lo and Hi hold the low and high 64 bits.
type Uint128 struct {
	Lo, Hi uint64
}

// AddProduct adds x*y to u.
func (u *Uint128) AddProduct(x, y Word) {
	var c uint64
	u.Lo, c = bits.Add64(u.Lo, uint64(x)*uint64(y), 0)
	u.Hi += c
}

// Shr32 shifts u right by one word and returns the word shifted out.
func (u *Uint128) Shr32() Word {
	w := Word(u.Lo)
	u.Lo = u.Lo>>WordBits | u.Hi<<WordBits
	u.Hi >>= WordBits
	return w
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Lo == 0 && u.Hi == 0 }
