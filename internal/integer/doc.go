// Package integer wraps vec32 word-vectors in value types.
//
// Nat is a natural number and Int a signed integer stored as sign and
// magnitude. Both are immutable values except for the explicitly mutating
// IncrementBy and ScaleBy methods on *Nat. Operations that have no natural
// number result, such as a negative difference or a zero divisor, return an
// error instead of a value.
//
// Infinities and NaN are not represented.
package integer
