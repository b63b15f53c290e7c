package harness

import (
	"errors"
	"slices"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/lazy"
	"github.com/mjakub/bignum/internal/vec32"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func wordVec(w vec32.Word) []vec32.Word {
	if w == 0 {
		return nil
	}
	return []vec32.Word{w}
}

// shifted returns v << (32*index).
func shifted(v []vec32.Word, index int) []vec32.Word {
	if len(v) == 0 {
		return nil
	}
	z := make([]vec32.Word, index, index+len(v))
	return append(z, v...)
}

// firstMismatch returns the first non-nil argument. Every check still runs,
// so the digest does not depend on where a run first fails.
func firstMismatch(ms ...*apperrors.MismatchError) *apperrors.MismatchError {
	for _, m := range ms {
		if m != nil {
			return m
		}
	}
	return nil
}

func ordered(a, b []vec32.Word) (lo, hi []vec32.Word) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

func checkAdd(t *Trial) *apperrors.MismatchError {
	a, b, c := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	w, w2 := t.Src.Word(), t.Src.Word()
	idx := t.Src.IntN(len(a) + 2)
	dword := uint64(w2)<<32 | uint64(w)

	sum := vec32.Add(a, b)
	lo, hi := ordered(a, b)
	return firstMismatch(
		t.Check("add_commutes", sum, vec32.Add(b, a), a, b),
		t.Check("add_ordered", sum, vec32.AddOrdered(lo, hi), a, b),
		t.Check("add_associates", vec32.Add(sum, c), vec32.Add(a, vec32.Add(b, c)), a, b, c),
		t.Check("add_word", vec32.Add(a, wordVec(w)), vec32.AddWord(a, w), a, wordVec(w)),
		t.Check("increment_by_word", vec32.AddWord(a, w), vec32.IncrementByWord(vec32.Clone(a), w), a, wordVec(w)),
		t.Check("increment_at_index_by_word", vec32.Add(a, shifted(wordVec(w), idx)),
			vec32.IncrementAtIndexByWord(vec32.Clone(a), idx, w), a, wordVec(w)),
		t.Check("increment_at_index_by_dword", vec32.Add(a, shifted(vec32.FromUint64(dword), idx)),
			vec32.IncrementAtIndexByDword(vec32.Clone(a), idx, dword), a, vec32.FromUint64(dword)),
		t.Check("add_sub_round_trip", a, vec32.Sub(sum, b), a, b),
	)
}

func checkAddGenerator(t *Trial) *apperrors.MismatchError {
	a, b := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	w := t.Src.Word()
	carryIn := t.Src.Bool()

	sumGen := lazy.SumGenerator{A: a, B: b, CarryIn: carryIn}
	var streamed []vec32.Word
	for word := range sumGen.Words() {
		streamed = append(streamed, word)
	}

	byWord := lazy.SumByWordGenerator{A: a, B: w}
	reversed := lazy.Collect(byWord.ReverseBegin())
	slices.Reverse(reversed)

	want := vec32.AddWithCarry(a, b, carryIn)
	wantByWord := vec32.AddWord(a, w)
	return firstMismatch(
		t.Check("sum_generator", want, sumGen.Collect(), a, b),
		t.Check("sum_generator_words", want, streamed, a, b),
		t.Check("sum_by_word_generator", wantByWord, byWord.Collect(), a, wordVec(w)),
		t.Check("reverse_sum_by_word", wantByWord, reversed, a, wordVec(w)),
		t.Check("product_by_word_generator", vec32.MulVecByWord(a, w),
			lazy.ProductByWordGenerator{A: a, B: w}.Collect(), a, wordVec(w)),
	)
}

func checkSub(t *Trial) *apperrors.MismatchError {
	a, b := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	delta, extra := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	w := t.Src.Word()
	idx := t.Src.IntN(t.MaxWords + 1)

	diff, aLessOrEqual := vec32.SymDiff(a, b)
	lo, hi := a, b
	if !aLessOrEqual {
		lo, hi = b, a
	}
	var order *apperrors.MismatchError
	if aLessOrEqual != vec32.LessThanOrEqual(a, b) {
		order = t.Mismatch("symdiff_order", "a<=b", "a>b", a, b)
	}

	minuend := vec32.Add(shifted(delta, idx), extra)
	return firstMismatch(
		order,
		t.Check("symdiff", hi, vec32.Add(lo, diff), a, b),
		t.Check("sub", b, vec32.Sub(vec32.Add(a, b), a), a, b),
		t.Check("decrement_by_word", a, vec32.DecrementByWord(vec32.AddWord(a, w), w), a, wordVec(w)),
		t.Check("decrement_at_index", extra, vec32.DecrementAtIndex(vec32.Clone(minuend), idx, delta), minuend, delta),
		t.Check("decrement_by", extra, vec32.DecrementBy(vec32.Add(delta, extra), delta), delta, extra),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication
// ─────────────────────────────────────────────────────────────────────────────

func checkMul(t *Trial) *apperrors.MismatchError {
	a, b, c := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)

	want := vec32.MulOldFashioned(a, b)
	lo, hi := ordered(a, b)
	return firstMismatch(
		t.Check("mul", want, vec32.Mul(a, b), a, b),
		t.Check("mul_commutes", want, vec32.Mul(b, a), a, b),
		t.Check("mul_ordered", want, vec32.MulOrdered(lo, hi), a, b),
		t.Check("mul_ordered_old_fashioned", want, vec32.MulOrderedOldFashioned(lo, hi), a, b),
		t.Check("product_generator", want, lazy.ProductGenerator{A: a, B: b}.Collect(), a, b),
		t.Check("scale_by", want, vec32.ScaleBy(vec32.Clone(a), b), a, b),
		t.Check("mul_distributes", vec32.Add(want, vec32.Mul(a, c)), vec32.Mul(a, vec32.Add(b, c)), a, b, c),
	)
}

func checkMulByWord(t *Trial) *apperrors.MismatchError {
	a, d, extra := t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords), t.Src.Nat(t.MaxWords)
	w, q := t.Src.Word(), t.Src.Word()
	idx := t.Src.IntN(t.MaxWords + 1)

	want := vec32.Mul(a, wordVec(w))
	r := vec32.Add(shifted(vec32.MulVecByWord(d, q), idx), extra)
	return firstMismatch(
		t.Check("mul_vec_by_word", want, vec32.MulVecByWord(a, w), a, wordVec(w)),
		t.Check("scale_by_word", want, vec32.ScaleByWord(vec32.Clone(a), w), a, wordVec(w)),
		t.Check("sub_product_at_index", extra, vec32.SubProductAtIndex(vec32.Clone(r), idx, d, q), r, d, wordVec(q)),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Division
// ─────────────────────────────────────────────────────────────────────────────

// divOperands builds n = q*d + r with r < d, so the expected quotient and
// remainder are known before dividing.
func divOperands(t *Trial) (n, d, q, r []vec32.Word) {
	q = t.Src.Nat(t.MaxWords)
	d = t.Src.NonzeroNat(t.MaxWords)
	r = t.Src.LessThan(d)
	n = vec32.Add(vec32.Mul(q, d), r)
	return n, d, q, r
}

func checkDiv(t *Trial) *apperrors.MismatchError {
	n, d, q, r := divOperands(t)
	gq, gr := vec32.Div(n, d)

	var verify *apperrors.MismatchError
	if err := vec32.VerifyDivision(n, d, gq, gr); err != nil {
		verify = t.Mismatch("div_verify", "q*d + r == n, r < d", err.Error(), n, d)
	}
	var byZero *apperrors.MismatchError
	if _, _, err := vec32.Divide(n, nil); !errors.Is(err, apperrors.ErrDivisionByZero) {
		byZero = t.Mismatch("divide_by_zero", apperrors.ErrDivisionByZero.Error(), errString(err), n)
	}
	return firstMismatch(
		t.Check("div_quotient", q, gq, n, d),
		t.Check("div_remainder", r, gr, n, d),
		verify,
		byZero,
	)
}

func checkDivByWord(t *Trial) *apperrors.MismatchError {
	q := t.Src.Nat(t.MaxWords)
	d := t.Src.NonzeroWord()
	r := t.Src.Word() % d
	n := vec32.Add(vec32.MulVecByWord(q, d), wordVec(r))

	gq, gr := vec32.DivWord(n, d)
	var rem *apperrors.MismatchError
	t.Record(wordVec(gr))
	if gr != r {
		rem = t.Mismatch("div_word_remainder", vec32.Format(wordVec(r)), vec32.Format(wordVec(gr)), n, wordVec(d))
	}
	mq, mr := vec32.Div(n, wordVec(d))
	return firstMismatch(
		t.Check("div_word_quotient", q, gq, n, wordVec(d)),
		rem,
		t.Check("div_single_word_divisor", q, mq, n, wordVec(d)),
		t.Check("div_single_word_remainder", wordVec(r), mr, n, wordVec(d)),
	)
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
