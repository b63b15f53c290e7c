// Package vec32 implements arbitrary-precision unsigned arithmetic over
// little-endian vectors of 32-bit words.
//
// # Representation
//
// A word-vector is a []Word with index 0 holding the least significant word.
// The canonical form has no most-significant zero word: the empty vector is
// zero, and any other vector ends in a nonzero word. Every exported function
// expects canonical input and returns canonical output.
//
// # Pure and mutating operations
//
// Functions such as Add, Mul and Div allocate and return fresh vectors and
// never modify their arguments. The mutating functions (IncrementByWord,
// DecrementBy, ScaleByWord, SubProductAtIndex, ...) follow the append
// convention: they write into the argument's backing array and return the
// resulting slice, which may have been regrown or shortened:
//
//	v = vec32.IncrementByWord(v, 1)
//
// A mutating call requires exclusive access to its vector.
//
// # Preconditions
//
// The "ordered" variants (AddOrdered, MulOrdered, ...) require the shorter
// operand first, and the decrement family requires the minuend to be at
// least the subtrahend. Violations are programmer errors. Builds using the
// vec32debug tag check these preconditions and re-verify every division,
// panicking with an *apperrors.InvariantError when a check fails.
//
// # Division by zero
//
// Div and DivWord are total: a zero divisor yields a zero quotient and a
// zero remainder. Divide reports apperrors.ErrDivisionByZero instead.
package vec32
