package harness

import (
	"math/rand/v2"

	"github.com/mjakub/bignum/internal/vec32"
)

// DefaultSeed is the seed the suites use when none is configured.
const DefaultSeed uint64 = 0xa134f102

// edgeOneIn is the chance, as 1 in n, that Word returns a boundary value
// instead of a uniform one. Boundary words drive long carry and borrow chains.
const edgeOneIn = 16

var edgeWords = [...]vec32.Word{0, 1, 0x7FFF_FFFF, 0x8000_0000, vec32.MaxWord - 1, vec32.MaxWord}

// Source generates pseudo-random word vectors. The sequence is fully
// determined by the seed. A Source is not safe for concurrent use; each suite
// owns one.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n).
func (s *Source) IntN(n int) int { return s.rng.IntN(n) }

// Bool returns a uniform bool.
func (s *Source) Bool() bool { return s.rng.Uint32()&1 == 1 }

// Word returns a word, usually uniform, sometimes a boundary value.
func (s *Source) Word() vec32.Word {
	if s.rng.IntN(edgeOneIn) == 0 {
		return edgeWords[s.rng.IntN(len(edgeWords))]
	}
	return s.rng.Uint32()
}

// NonzeroWord returns a word other than zero.
func (s *Source) NonzeroWord() vec32.Word {
	for {
		if w := s.Word(); w != 0 {
			return w
		}
	}
}

// Nat returns a canonical vector whose length before normalization is uniform
// in [0, maxWords].
func (s *Source) Nat(maxWords int) []vec32.Word {
	size := s.rng.IntN(maxWords + 1)
	v := make([]vec32.Word, size)
	for i := range v {
		v[i] = s.Word()
	}
	return vec32.Normalize(v)
}

// NonzeroNat returns a canonical nonzero vector of length uniform in
// [1, maxWords]. A zero top word is replaced by 1.
func (s *Source) NonzeroNat(maxWords int) []vec32.Word {
	size := 1 + s.rng.IntN(max(maxWords, 1))
	v := make([]vec32.Word, size)
	for i := range v {
		v[i] = s.Word()
	}
	if v[size-1] == 0 {
		v[size-1] = 1
	}
	return v
}

// NonzeroLE returns a canonical nonzero vector not greater than limit, which
// must be nonzero. Words are drawn from the most significant end, bounded by
// limit's word while the prefix still equals limit's.
func (s *Source) NonzeroLE(limit []vec32.Word) []vec32.Word {
	if len(limit) == 0 {
		panic("harness: NonzeroLE of zero")
	}
	if len(limit) == 1 {
		return []vec32.Word{1 + vec32.Word(s.rng.Uint64N(uint64(limit[0])))}
	}
	size := 1 + s.rng.IntN(len(limit))
	v := make([]vec32.Word, size)
	tight := size == len(limit)
	for i := size - 1; i >= 0; i-- {
		if tight {
			w := vec32.Word(s.rng.Uint64N(uint64(limit[i]) + 1))
			v[i] = w
			tight = w == limit[i]
		} else {
			v[i] = s.Word()
		}
	}
	v = vec32.Normalize(v)
	if len(v) == 0 {
		// limit has at least two words, so any single nonzero word is below it.
		v = []vec32.Word{s.NonzeroWord()}
	}
	return v
}

// LessThan returns a canonical vector strictly less than limit, which must be
// nonzero. The result may be zero.
func (s *Source) LessThan(limit []vec32.Word) []vec32.Word {
	r := s.NonzeroLE(limit)
	if vec32.Equal(r, limit) {
		return vec32.DecrementByWord(r, 1)
	}
	return r
}
