package vec32

import (
	"math/bits"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Canonical form
// ─────────────────────────────────────────────────────────────────────────────

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []Word
		want []Word
	}{
		{"nil", nil, nil},
		{"single zero", []Word{0}, []Word{}},
		{"all zeros", []Word{0, 0, 0}, []Word{}},
		{"trailing zeros", []Word{1, 2, 0, 0}, []Word{1, 2}},
		{"inner zero kept", []Word{0, 5, 0}, []Word{0, 5}},
		{"already canonical", []Word{7}, []Word{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in)
			assertVec(t, "Normalize", tt.want, got)
			assertVec(t, "Normalize twice", got, Normalize(got))
			assertCanonical(t, "Normalize", got)
		})
	}
}

func TestFromUint64(t *testing.T) {
	t.Parallel()

	assertVec(t, "0", nil, FromUint64(0))
	assertVec(t, "1", []Word{1}, FromUint64(1))
	assertVec(t, "2^32-1", []Word{MaxWord}, FromUint64(0xFFFF_FFFF))
	assertVec(t, "2^32", []Word{0, 1}, FromUint64(1<<32))
	assertVec(t, "max", []Word{MaxWord, MaxWord}, FromUint64(^uint64(0)))
}

func TestClone(t *testing.T) {
	t.Parallel()

	if Clone(nil) != nil {
		t.Error("Clone(nil) should stay nil")
	}
	src := []Word{1, 2, 3}
	dst := Clone(src)
	dst[0] = 9
	if src[0] != 1 {
		t.Error("Clone shares storage with its source")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []Word
		want int
	}{
		{"both zero", nil, []Word{}, 0},
		{"zero vs one", nil, []Word{1}, -1},
		{"shorter is smaller", []Word{MaxWord}, []Word{0, 1}, -1},
		{"longer is larger", []Word{0, 0, 1}, []Word{MaxWord, MaxWord}, 1},
		{"msw decides", []Word{MaxWord, 1}, []Word{0, 2}, -1},
		{"lsw decides", []Word{3, 2}, []Word{2, 2}, 1},
		{"equal", []Word{3, 2}, []Word{3, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", Format(tt.a), Format(tt.b), got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", Format(tt.b), Format(tt.a), got, -tt.want)
			}
			if LessThan(tt.a, tt.b) != (tt.want < 0) {
				t.Error("LessThan disagrees with Compare")
			}
			if GreaterThan(tt.a, tt.b) != (tt.want > 0) {
				t.Error("GreaterThan disagrees with Compare")
			}
			if LessThanOrEqual(tt.a, tt.b) != (tt.want <= 0) {
				t.Error("LessThanOrEqual disagrees with Compare")
			}
			if Equal(tt.a, tt.b) != (tt.want == 0) {
				t.Error("Equal disagrees with Compare")
			}
		})
	}
}

func TestCompareAtIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a     []Word
		index int
		b     []Word
		less  bool
		great bool
	}{
		{"zero shifted is zero", nil, 3, nil, false, false},
		{"nonzero vs zero", []Word{1}, 2, nil, false, true},
		{"exact shift", []Word{0, 0, 5}, 2, []Word{5}, false, false},
		{"too short", []Word{MaxWord, MaxWord}, 2, []Word{1}, true, false},
		{"too long", []Word{0, 0, 0, 1}, 1, []Word{1}, false, true},
		{"window smaller", []Word{9, 4}, 1, []Word{5}, true, false},
		{"window larger", []Word{0, 6}, 1, []Word{5}, false, true},
		{"tie broken by low word", []Word{1, 5}, 1, []Word{5}, false, true},
		{"tie with zero low words", []Word{0, 0, 7, 8}, 2, []Word{7, 8}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LessThanAtIndex(tt.a, tt.index, tt.b); got != tt.less {
				t.Errorf("LessThanAtIndex = %v, want %v", got, tt.less)
			}
			if got := GreaterThanAtIndex(tt.a, tt.index, tt.b); got != tt.great {
				t.Errorf("GreaterThanAtIndex = %v, want %v", got, tt.great)
			}
		})
	}
}

func TestCompareAtIndexMatchesShiftedCompare(t *testing.T) {
	t.Parallel()

	r := newRand()
	for range 2000 {
		a := randVec(r, 6)
		b := randVec(r, 4)
		index := r.IntN(4)
		var shifted []Word
		if len(b) != 0 {
			shifted = append(make([]Word, index), b...)
		}
		want := Compare(a, shifted)
		if got := compareAtIndex(a, index, b); got != want {
			t.Fatalf("compareAtIndex(%s, %d, %s) = %d, want %d", Format(a), index, Format(b), got, want)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Word primitives
// ─────────────────────────────────────────────────────────────────────────────

func TestSubWordMatchesSub32(t *testing.T) {
	t.Parallel()

	edges := []Word{0, 1, 2, 0x7FFF_FFFF, 0x8000_0000, MaxWord - 1, MaxWord}
	for _, x := range edges {
		for _, y := range edges {
			for _, b := range []Word{0, 1} {
				wantDiff, wantBorrow := bits.Sub32(x, y, b)
				gotDiff, gotBorrow := subWord(x, y, b)
				if gotDiff != wantDiff || gotBorrow != wantBorrow {
					t.Errorf("subWord(%#x, %#x, %d) = (%#x, %d), want (%#x, %d)",
						x, y, b, gotDiff, gotBorrow, wantDiff, wantBorrow)
				}
			}
		}
	}
}

func TestUint128(t *testing.T) {
	t.Parallel()

	var u Uint128
	if !u.IsZero() {
		t.Fatal("zero value should be zero")
	}
	// Five maximal products overflow 64 bits.
	for range 5 {
		u.AddProduct(MaxWord, MaxWord)
	}
	want := toBig([]Word{MaxWord})
	want.Mul(want, want)
	want.Mul(want, toBig([]Word{5}))

	var got []Word
	for !u.IsZero() {
		got = append(got, u.Shr32())
	}
	assertVec(t, "5*(2^32-1)^2", fromBig(want), got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Printing and parsing
// ─────────────────────────────────────────────────────────────────────────────

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []Word
		want string
	}{
		{nil, "0"},
		{[]Word{0x31, 0x1}, "1'31"},
		{[]Word{MaxWord}, "ffffffff"},
		{[]Word{0, 0, 0xabc}, "abc'0'0"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []Word
		wantErr bool
	}{
		{"0", nil, false},
		{"1'31", []Word{0x31, 0x1}, false},
		{"0x1'31", []Word{0x31, 0x1}, false},
		{"0'0'5", []Word{5}, false},
		{"FFFFFFFF'0", []Word{0, MaxWord}, false},
		{"", nil, true},
		{"1''2", nil, true},
		{"1'100000000", nil, true},
		{"xyz", nil, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr {
			assertVec(t, "Parse("+tt.in+")", tt.want, got)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	r := newRand()
	for range 500 {
		v := randVec(r, 8)
		got, err := Parse(Format(v))
		if err != nil {
			t.Fatalf("Parse(Format(%v)): %v", v, err)
		}
		assertVec(t, "round trip", v, got)
	}
}
