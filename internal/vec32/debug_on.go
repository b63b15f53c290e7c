//go:build vec32debug

package vec32

const debugChecks = true
