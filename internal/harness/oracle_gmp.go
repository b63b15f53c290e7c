//go:build gmp

// The GMP oracle needs cgo and libgmp, so it is only compiled with
// -tags=gmp. It registers itself with the default registry from init.

package harness

import (
	"github.com/ncw/gmp"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/vec32"
)

func init() {
	RegisterBuiltin(func() Suite {
		return NewFuzzSuite("gmp_oracle", "compare add, mul and div against GMP", checkGMPOracle)
	})
}

// toGMP converts v to a gmp.Int through its big-endian bytes.
func toGMP(v []vec32.Word) *gmp.Int {
	buf := make([]byte, 0, 4*len(v))
	for i := len(v) - 1; i >= 0; i-- {
		w := v[i]
		buf = append(buf, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	return new(gmp.Int).SetBytes(buf)
}

// gmpWords converts a non-negative gmp.Int back to a word vector.
func gmpWords(x *gmp.Int) []vec32.Word {
	b := x.Bytes()
	v := make([]vec32.Word, 0, (len(b)+3)/4)
	for end := len(b); end > 0; end -= 4 {
		var w vec32.Word
		for i := max(end-4, 0); i < end; i++ {
			w = w<<8 | vec32.Word(b[i])
		}
		v = append(v, w)
	}
	return vec32.Normalize(v)
}

func checkGMPOracle(t *Trial) *apperrors.MismatchError {
	a, b := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	d := t.Src.NonzeroNat(t.MaxWords)
	ga, gb, gd := toGMP(a), toGMP(b), toGMP(d)

	gq, gr := new(gmp.Int), new(gmp.Int)
	gq.QuoRem(ga, gd, gr)
	q, r := vec32.Div(a, d)

	return firstMismatch(
		t.Check("gmp_add", gmpWords(new(gmp.Int).Add(ga, gb)), vec32.Add(a, b), a, b),
		t.Check("gmp_mul", gmpWords(new(gmp.Int).Mul(ga, gb)), vec32.Mul(a, b), a, b),
		t.Check("gmp_div_quotient", gmpWords(gq), q, a, d),
		t.Check("gmp_div_remainder", gmpWords(gr), r, a, d),
	)
}
