package vec32

import (
	"encoding/binary"
	"math/big"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// testSeed matches the default seed of the fuzz harness.
const testSeed = 0xa134f102

var wordMask = new(big.Int).SetUint64(lowMask)

// toBig converts a word-vector to a big.Int.
func toBig(v []Word) *big.Int {
	z := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		z.Lsh(z, WordBits)
		z.Or(z, new(big.Int).SetUint64(uint64(v[i])))
	}
	return z
}

// fromBig converts a non-negative big.Int to a canonical word-vector.
func fromBig(x *big.Int) []Word {
	var v []Word
	t := new(big.Int).Set(x)
	w := new(big.Int)
	for t.Sign() > 0 {
		v = append(v, Word(w.And(t, wordMask).Uint64()))
		t.Rsh(t, WordBits)
	}
	return v
}

// newRand returns a deterministic source for table and oracle tests.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(testSeed, testSeed))
}

// edgeWord biases random words toward the carry and borrow boundaries.
func edgeWord(r *rand.Rand) Word {
	switch r.IntN(6) {
	case 0:
		return 0
	case 1:
		return MaxWord
	case 2:
		return 1
	default:
		return r.Uint32()
	}
}

// randVec returns a canonical vector of at most maxWords words.
func randVec(r *rand.Rand, maxWords int) []Word {
	v := make([]Word, r.IntN(maxWords+1))
	for i := range v {
		v[i] = edgeWord(r)
	}
	return Normalize(v)
}

// randNonzeroVec returns a nonzero canonical vector of at most maxWords words.
func randNonzeroVec(r *rand.Rand, maxWords int) []Word {
	for {
		if v := randVec(r, maxWords); len(v) != 0 {
			return v
		}
	}
}

// bytesToVec packs little-endian bytes into a canonical vector.
func bytesToVec(data []byte) []Word {
	v := make([]Word, (len(data)+3)/4)
	for i := range v {
		var buf [4]byte
		copy(buf[:], data[4*i:])
		v[i] = binary.LittleEndian.Uint32(buf[:])
	}
	return Normalize(v)
}

// genWord generates words with roughly half of them on a boundary value.
func genWord() gopter.Gen {
	return gen.UInt32().Map(func(x uint32) uint32 {
		switch x % 4 {
		case 0:
			return 0
		case 1:
			return MaxWord
		}
		return x
	})
}

// genVec generates canonical vectors of up to maxWords words.
func genVec(maxWords int) gopter.Gen {
	return gen.IntRange(0, maxWords).FlatMap(func(n any) gopter.Gen {
		return gen.SliceOfN(n.(int), genWord())
	}, reflect.TypeOf([]uint32(nil))).Map(func(v []uint32) []uint32 {
		return Normalize(v)
	})
}

// assertVec fails the test when got differs from want, treating nil and
// empty vectors as equal.
func assertVec(t *testing.T, what string, want, got []Word) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}

// assertCanonical fails the test when v ends in a zero word.
func assertCanonical(t *testing.T, what string, v []Word) {
	t.Helper()
	if !IsCanonical(v) {
		t.Errorf("%s = %s is not canonical", what, Format(v))
	}
}

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}
