package vec32

import (
	"slices"

	apperrors "github.com/mjakub/bignum/internal/errors"
)

// subtractDwordFromTop subtracts delta from the two most significant words
// of n, which must hold at least delta, and normalizes n.
func subtractDwordFromTop(n []Word, delta uint64) []Word {
	k := len(n) - 2
	var borrow Word
	n[k], borrow = subWord(n[k], Word(delta), 0)
	n[k+1], _ = subWord(n[k+1], Word(delta>>WordBits), borrow)
	return Normalize(n)
}

// DivWord divides n by the single word d, returning n = q*d + r with r < d.
// A zero divisor yields (nil, 0).
//
// Each pass divides the top two words of the running remainder by d. The
// one or two word quotient is added to q at the matching place value and
// its product is subtracted from the top of the remainder, which leaves a
// top double-word below d and so removes at least one word.
func DivWord(n []Word, d Word) (q []Word, r Word) {
	if d == 0 || len(n) == 0 {
		return nil, 0
	}
	q = make([]Word, len(n))
	rem := slices.Clone(n)
	dd := uint64(d)
	for len(rem) > 1 {
		top := len(rem) - 2
		hq := dword(rem[top+1], rem[top]) / dd
		q = IncrementAtIndexByDword(q, top, hq)
		rem = subtractDwordFromTop(rem, hq*dd)
	}
	if len(rem) == 1 {
		r = rem[0]
		if r >= d {
			q = IncrementByWord(q, r/d)
			r %= d
		}
	}
	q = Normalize(q)
	if debugChecks {
		mustVerify(VerifyDivisionByWord(n, d, q, r))
	}
	return q, r
}

// Div divides n by d, returning n = q*d + r with r < d. A zero divisor
// yields (nil, nil); a one-word divisor is handled by DivWord.
//
// The running remainder r starts at n. Each step compares the top
// double-word of r (rTop) with the top double-word of d (dTop) and picks a
// trial digit that never exceeds the true quotient digit at its place value:
//
//   - rTop > dTop: digit rTop/dTop at index len(r)-len(d) when d has two
//     words (exact), otherwise rTop/(dTop+1), since the words of d below dTop
//     can push d*(rTop/dTop) past r. Either way the digit is at least 1 and
//     fits a word because dTop >= 2^32.
//   - rTop == dTop and len(r) == len(d): r - d < d, so subtract d once and stop.
//   - rTop == dTop and len(r) > len(d): digit 0xFFFFFFFF at index
//     len(r)-len(d)-1. With rs = len(r), ds = len(d):
//     r + 2^(32(rs-2)) > d*2^(32(rs-ds)), and because d >= 2^(32(ds-1)),
//     d*2^(32(rs-ds-1)) >= 2^(32(rs-2)); together
//     r > d*(2^32 - 1)*2^(32(rs-ds-1)).
//   - rTop < dTop: digit rTop/(dMSW+1) at index len(r)-len(d)-1. It fits a
//     word because rTop < dTop <= dMSW*2^32 + 2^32 - 1, and it is at least 1
//     because rTop >= 2^32 > dMSW.
//
// The loop ends once r < d. A two-word remainder only arises with a
// two-word divisor and is finished by one exact 64-bit division.
func Div(n, d []Word) (q, r []Word) {
	switch len(d) {
	case 0:
		return nil, nil
	case 1:
		qw, rw := DivWord(n, d[0])
		return qw, FromUint64(uint64(rw))
	}
	if LessThan(n, d) {
		return nil, slices.Clone(n)
	}

	ds := len(d)
	dMSW := d[ds-1]
	dTop := dword(dMSW, d[ds-2])
	q = make([]Word, len(n)-ds+1)
	r = slices.Clone(n)

loop:
	for !LessThan(r, d) {
		rs := len(r)
		if rs == 2 {
			// Here ds == 2 and dTop == d, so the division is exact.
			qw := dword(r[1], r[0]) / dTop
			q = IncrementByWord(q, Word(qw))
			r = subtractDwordFromTop(r, qw*dTop)
			break
		}

		rTop := dword(r[rs-1], r[rs-2])
		switch {
		case rTop > dTop:
			divisor := dTop
			if ds > 2 {
				divisor++
			}
			qw := Word(rTop / divisor)
			index := rs - ds
			r = SubProductAtIndex(r, index, d, qw)
			q = IncrementAtIndexByWord(q, index, qw)

		case rTop == dTop && rs == ds:
			r = DecrementBy(r, d)
			q = IncrementByWord(q, 1)
			break loop

		case rTop == dTop:
			index := rs - ds - 1
			r = SubProductAtIndex(r, index, d, MaxWord)
			q = IncrementAtIndexByWord(q, index, MaxWord)

		default:
			qw := Word(rTop / (uint64(dMSW) + 1))
			index := rs - ds - 1
			r = SubProductAtIndex(r, index, d, qw)
			q = IncrementAtIndexByWord(q, index, qw)
		}

		if debugChecks {
			assertf(Equal(Add(Mul(Normalize(q), d), r), n), "Div",
				"n != q*d + r after step (n=%s d=%s q=%s r=%s)", Format(n), Format(d), Format(q), Format(r))
		}
	}

	q = Normalize(q)
	if debugChecks {
		mustVerify(VerifyDivision(n, d, q, r))
	}
	return q, r
}

// Divide is Div with an explicit error for a zero divisor.
func Divide(n, d []Word) (q, r []Word, err error) {
	if IsZero(d) {
		return nil, nil, apperrors.ErrDivisionByZero
	}
	q, r = Div(n, d)
	return q, r, nil
}
