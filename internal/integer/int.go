package integer

import (
	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/vec32"
)

// Int is a signed integer of arbitrary size. Zero is never negative.
type Int struct {
	neg bool
	mag Nat
}

// NewInt returns x as an Int.
func NewInt(x int64) Int {
	if x < 0 {
		// -(x+1) cannot overflow for math.MinInt64.
		return Int{neg: true, mag: NatFromUint64(uint64(-(x + 1)) + 1)}
	}
	return Int{mag: NatFromUint64(uint64(x))}
}

// IntFromNat returns the Int with magnitude n, negated when negative is set.
func IntFromNat(n Nat, negative bool) Int {
	return Int{neg: negative && !n.IsZero(), mag: n}
}

// ParseInt reads an optional leading '-' followed by the Nat form.
func ParseInt(s string) (Int, error) {
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	n, err := ParseNat(s)
	if err != nil {
		return Int{}, err
	}
	return IntFromNat(n, neg), nil
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x Int) Abs() Nat { return x.mag }

func (x Int) Neg() Int { return IntFromNat(x.mag, !x.neg) }

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.mag.Cmp(x.mag)
	default:
		return x.mag.Cmp(y.mag)
	}
}

func (x Int) Equal(y Int) bool { return x.neg == y.neg && x.mag.Equal(y.mag) }

func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return IntFromNat(x.mag.Add(y.mag), x.neg)
	}
	diff, xSmaller := vec32.SymDiff(x.mag.words, y.mag.words)
	neg := x.neg
	if xSmaller {
		neg = y.neg
	}
	return IntFromNat(Nat{words: diff}, neg)
}

func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

func (x Int) Mul(y Int) Int { return IntFromNat(x.mag.Mul(y.mag), x.neg != y.neg) }

// QuoRem returns the quotient truncated toward zero and the remainder,
// which takes the sign of x, so that x == q*y + r.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	qm, rm, err := x.mag.DivMod(y.mag)
	if err != nil {
		return Int{}, Int{}, apperrors.WrapError(err, "quorem")
	}
	return IntFromNat(qm, x.neg != y.neg), IntFromNat(rm, x.neg), nil
}

func (x Int) String() string {
	if x.neg {
		return "-" + x.mag.String()
	}
	return x.mag.String()
}

