package harness

import (
	"math/big"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/integer"
	"github.com/mjakub/bignum/internal/vec32"
)

// bigWords converts a non-negative big.Int to a word vector.
func bigWords(x *big.Int) []vec32.Word {
	n, err := integer.NatFromBig(x)
	if err != nil {
		// Every oracle value here is non-negative.
		panic(err)
	}
	return n.Words()
}

func toBig(v []vec32.Word) *big.Int { return integer.NewNat(v...).ToBig() }

// checkBigOracle compares every engine against math/big on the same operands.
func checkBigOracle(t *Trial) *apperrors.MismatchError {
	a, b := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	d := t.Src.NonzeroNat(t.MaxWords)
	w := t.Src.NonzeroWord()
	ba, bb, bd := toBig(a), toBig(b), toBig(d)

	diff, _ := vec32.SymDiff(a, b)
	bq, br := new(big.Int).QuoRem(ba, bd, new(big.Int))
	q, r := vec32.Div(a, d)
	bqw, brw := new(big.Int).QuoRem(ba, new(big.Int).SetUint64(uint64(w)), new(big.Int))
	qw, rw := vec32.DivWord(a, w)

	return firstMismatch(
		t.Check("big_add", bigWords(new(big.Int).Add(ba, bb)), vec32.Add(a, b), a, b),
		t.Check("big_symdiff", bigWords(new(big.Int).Abs(new(big.Int).Sub(ba, bb))), diff, a, b),
		t.Check("big_mul", bigWords(new(big.Int).Mul(ba, bb)), vec32.Mul(a, b), a, b),
		t.Check("big_mul_old_fashioned", bigWords(new(big.Int).Mul(ba, bb)), vec32.MulOldFashioned(a, b), a, b),
		t.Check("big_div_quotient", bigWords(bq), q, a, d),
		t.Check("big_div_remainder", bigWords(br), r, a, d),
		t.Check("big_div_word_quotient", bigWords(bqw), qw, a, wordVec(w)),
		t.Check("big_div_word_remainder", bigWords(brw), wordVec(rw), a, wordVec(w)),
	)
}
