package vec32

import (
	"fmt"

	apperrors "github.com/mjakub/bignum/internal/errors"
)

// assertf panics with an InvariantError when cond is false. Call sites guard
// it with debugChecks so release builds pay nothing.
func assertf(cond bool, op, format string, args ...any) {
	if !cond {
		panic(apperrors.NewInvariantError(op, format, args...))
	}
}

// mustVerify panics with err when it is non-nil.
func mustVerify(err error) {
	if err != nil {
		panic(err)
	}
}

// VerifyCanonical returns an InvariantError if v has a most-significant zero word.
func VerifyCanonical(op string, v []Word) error {
	if !IsCanonical(v) {
		return apperrors.NewInvariantError(op, "result %s (%d words) ends in a zero word", Format(v), len(v))
	}
	return nil
}

// VerifyDivision checks the postconditions of Div: all four vectors are
// canonical, n == q*d + r and r < d. For a zero divisor both q and r must be
// zero.
func VerifyDivision(n, d, q, r []Word) error {
	for _, v := range [][]Word{n, d, q, r} {
		if err := VerifyCanonical("div", v); err != nil {
			return err
		}
	}
	if IsZero(d) {
		if IsNonzero(q) || IsNonzero(r) {
			return apperrors.NewInvariantError("div", "division by zero produced q=%s r=%s", Format(q), Format(r))
		}
		return nil
	}
	if !LessThan(r, d) {
		return apperrors.NewInvariantError("div", "remainder %s is not less than divisor %s", Format(r), Format(d))
	}
	if back := Add(Mul(q, d), r); !Equal(back, n) {
		return apperrors.NewInvariantError("div",
			"q*d + r = %s differs from numerator %s (d=%s q=%s r=%s)",
			Format(back), Format(n), Format(d), Format(q), Format(r))
	}
	return nil
}

// VerifyDivisionByWord checks the postconditions of DivWord.
func VerifyDivisionByWord(n []Word, d Word, q []Word, r Word) error {
	var rv []Word
	if r != 0 {
		rv = []Word{r}
	}
	var dv []Word
	if d != 0 {
		dv = []Word{d}
	}
	if err := VerifyDivision(n, dv, q, rv); err != nil {
		return fmt.Errorf("by word %#x: %w", d, err)
	}
	return nil
}
