package integer

import (
	"math/big"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/vec32"
)

var wordMask = new(big.Int).SetUint64(uint64(vec32.MaxWord))

// ToBig converts n to a big.Int.
func (n Nat) ToBig() *big.Int {
	z := new(big.Int)
	w := new(big.Int)
	for i := len(n.words) - 1; i >= 0; i-- {
		z.Lsh(z, vec32.WordBits)
		z.Or(z, w.SetUint64(uint64(n.words[i])))
	}
	return z
}

// NatFromBig converts a non-negative big.Int to a Nat.
func NatFromBig(x *big.Int) (Nat, error) {
	if x.Sign() < 0 {
		return Nat{}, apperrors.WrapError(apperrors.ErrNegativeResult, "nat from %s", x)
	}
	words := make([]vec32.Word, 0, (x.BitLen()+vec32.WordBits-1)/vec32.WordBits)
	t := new(big.Int).Set(x)
	w := new(big.Int)
	for t.Sign() > 0 {
		words = append(words, vec32.Word(w.And(t, wordMask).Uint64()))
		t.Rsh(t, vec32.WordBits)
	}
	return Nat{words: words}, nil
}

// ToBig converts x to a big.Int.
func (x Int) ToBig() *big.Int {
	z := x.mag.ToBig()
	if x.neg {
		z.Neg(z)
	}
	return z
}

// IntFromBig converts a big.Int to an Int.
func IntFromBig(x *big.Int) Int {
	n, _ := NatFromBig(new(big.Int).Abs(x))
	return IntFromNat(n, x.Sign() < 0)
}
