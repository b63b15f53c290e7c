package vec32

import (
	"slices"
	"strconv"
	"strings"
)

// Word is a single 32-bit digit of a word-vector.
type Word = uint32

const (
	// MaxWord is the largest value a Word can hold.
	MaxWord Word = 0xFFFF_FFFF
	// WordBits is the width of a Word in bits.
	WordBits = 32

	lowMask uint64 = 0xFFFF_FFFF
)

// Normalize strips most-significant zero words from v and returns the
// shortened slice. It is idempotent.
func Normalize(v []Word) []Word {
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	return v[:n]
}

// IsCanonical reports whether v has no most-significant zero word.
func IsCanonical(v []Word) bool {
	return len(v) == 0 || v[len(v)-1] != 0
}

// Clone returns an independent copy of v.
func Clone(v []Word) []Word {
	return slices.Clone(v)
}

// FromUint64 returns the canonical word-vector for x.
func FromUint64(x uint64) []Word {
	switch {
	case x == 0:
		return nil
	case x <= lowMask:
		return []Word{Word(x)}
	default:
		return []Word{Word(x), Word(x >> WordBits)}
	}
}

// IsZero reports whether v represents zero.
func IsZero(v []Word) bool { return len(v) == 0 }

// IsNonzero reports whether v represents a nonzero value.
func IsNonzero(v []Word) bool { return len(v) != 0 }

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. Lengths decide first; equal lengths are scanned from the
// most significant word down and the first differing word decides.
func Compare(a, b []Word) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// LessThan reports whether a < b.
func LessThan(a, b []Word) bool { return Compare(a, b) < 0 }

// GreaterThan reports whether a > b.
func GreaterThan(a, b []Word) bool { return Compare(a, b) > 0 }

// LessThanOrEqual reports whether a <= b.
func LessThanOrEqual(a, b []Word) bool { return Compare(a, b) <= 0 }

// Equal reports whether a and b hold the same value.
func Equal(a, b []Word) bool { return Compare(a, b) == 0 }

// compareAtIndex compares a against b shifted left by index words.
func compareAtIndex(a []Word, index int, b []Word) int {
	if len(b) == 0 {
		if len(a) == 0 {
			return 0
		}
		return 1
	}
	shifted := len(b) + index
	if len(a) != shifted {
		if len(a) < shifted {
			return -1
		}
		return 1
	}
	for i := len(b) - 1; i >= 0; i-- {
		if x := a[i+index]; x != b[i] {
			if x < b[i] {
				return -1
			}
			return 1
		}
	}
	// The shifted divisor has zeros below index.
	for _, w := range a[:index] {
		if w != 0 {
			return 1
		}
	}
	return 0
}

// LessThanAtIndex reports whether a < b<<(32*index) without building the
// shifted vector.
func LessThanAtIndex(a []Word, index int, b []Word) bool {
	return compareAtIndex(a, index, b) < 0
}

// GreaterThanAtIndex reports whether a > b<<(32*index) without building the
// shifted vector.
func GreaterThanAtIndex(a []Word, index int, b []Word) bool {
	return compareAtIndex(a, index, b) > 0
}

// Format renders v as hexadecimal words, most significant first, separated
// by apostrophes. Zero renders as "0".
//
//	Format([]Word{0x31, 0x1}) == "1'31"
func Format(v []Word) string {
	if len(v) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(9 * len(v))
	for i := len(v) - 1; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(uint64(v[i]), 16))
		if i > 0 {
			sb.WriteByte('\'')
		}
	}
	return sb.String()
}

// Parse reads the apostrophe-separated hexadecimal form produced by Format.
// An optional "0x" prefix is accepted. The result is normalized.
func Parse(s string) ([]Word, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, strconv.ErrSyntax
	}
	parts := strings.Split(s, "'")
	v := make([]Word, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseUint(p, 16, WordBits)
		if err != nil {
			return nil, err
		}
		v[len(parts)-1-i] = Word(w)
	}
	return Normalize(v), nil
}
