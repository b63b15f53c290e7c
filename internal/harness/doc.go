// Package harness holds the randomized checking and timing suites run by
// vec32check.
//
// A fuzz suite draws operands from a seeded Source, runs them through one
// or more kernel entry points and compares the results against an
// independent computation: another engine, a lazy generator, math/big, or
// GMP when built with the gmp tag. A timing suite runs a fixed workload and
// reports how long it took. Every suite folds the words it produced into an
// xxhash digest, so two runs with the same seed can be compared by digest
// alone.
//
// Suites are looked up by name in a Registry; DefaultRegistry holds every
// built-in suite plus any registered from build-tagged files.
package harness
