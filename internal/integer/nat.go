package integer

import (
	"fmt"

	apperrors "github.com/mjakub/bignum/internal/errors"
	"github.com/mjakub/bignum/internal/vec32"
)

// Nat is a non-negative integer of arbitrary size. The zero value is 0.
type Nat struct {
	words []vec32.Word // canonical; never modified after construction
}

// NewNat builds a Nat from words given least significant first.
func NewNat(words ...vec32.Word) Nat {
	return Nat{words: vec32.Normalize(vec32.Clone(words))}
}

// NatFromUint64 returns x as a Nat.
func NatFromUint64(x uint64) Nat {
	return Nat{words: vec32.FromUint64(x)}
}

// ParseNat reads the apostrophe-separated hexadecimal form written by String.
func ParseNat(s string) (Nat, error) {
	w, err := vec32.Parse(s)
	if err != nil {
		return Nat{}, apperrors.WrapError(err, "parse nat %q", s)
	}
	return Nat{words: w}, nil
}

// Len returns the number of words in n; zero has none.
func (n Nat) Len() int { return len(n.words) }

// Word returns word i of n, or zero past the most significant word.
func (n Nat) Word(i int) vec32.Word {
	if i < 0 || i >= len(n.words) {
		return 0
	}
	return n.words[i]
}

// Words returns a copy of the words of n, least significant first.
func (n Nat) Words() []vec32.Word { return vec32.Clone(n.words) }

func (n Nat) IsZero() bool { return vec32.IsZero(n.words) }

// Cmp returns -1, 0 or +1 as n is less than, equal to, or greater than m.
func (n Nat) Cmp(m Nat) int { return vec32.Compare(n.words, m.words) }

func (n Nat) Equal(m Nat) bool { return vec32.Equal(n.words, m.words) }

func (n Nat) Less(m Nat) bool { return vec32.LessThan(n.words, m.words) }

func (n Nat) Add(m Nat) Nat { return Nat{words: vec32.Add(n.words, m.words)} }

// Sub returns n - m, or ErrNegativeResult when m > n.
func (n Nat) Sub(m Nat) (Nat, error) {
	if vec32.LessThan(n.words, m.words) {
		return Nat{}, fmt.Errorf("%s - %s: %w", n, m, apperrors.ErrNegativeResult)
	}
	return Nat{words: vec32.Sub(n.words, m.words)}, nil
}

func (n Nat) Mul(m Nat) Nat { return Nat{words: vec32.Mul(n.words, m.words)} }

// DivMod returns the Euclidean quotient and remainder of n / d.
func (n Nat) DivMod(d Nat) (q, r Nat, err error) {
	qw, rw, err := vec32.Divide(n.words, d.words)
	if err != nil {
		return Nat{}, Nat{}, fmt.Errorf("%s / 0: %w", n, err)
	}
	return Nat{words: qw}, Nat{words: rw}, nil
}

// DivModWord divides n by a single word.
func (n Nat) DivModWord(d vec32.Word) (q Nat, r vec32.Word, err error) {
	if d == 0 {
		return Nat{}, 0, fmt.Errorf("%s / 0: %w", n, apperrors.ErrDivisionByZero)
	}
	qw, r := vec32.DivWord(n.words, d)
	return Nat{words: qw}, r, nil
}

// IncrementBy sets n to n + m.
func (n *Nat) IncrementBy(m Nat) {
	n.words = vec32.Add(n.words, m.words)
}

// ScaleBy sets n to n * m.
func (n *Nat) ScaleBy(m Nat) {
	n.words = vec32.Mul(n.words, m.words)
}

// String formats n as hexadecimal words, most significant first, separated
// by apostrophes.
func (n Nat) String() string { return vec32.Format(n.words) }
