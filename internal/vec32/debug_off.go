//go:build !vec32debug

package vec32

// debugChecks enables precondition and postcondition verification.
// Build with -tags vec32debug to turn it on.
const debugChecks = false
