package config

import "runtime"

// Trial-size resolution chain (highest priority first):
//   1. CLI flags (--trials, --max-words, --workers)
//   2. Environment variables (VEC32_TRIALS, etc.)
//   3. The selected profile (this file)
//   4. Hardware estimation for the worker count (this file)

// Profile holds the defaults a named profile supplies.
type Profile struct {
	Trials   int
	MaxWords int
}

var profiles = map[string]Profile{
	// Small vectors hit every carry path quickly.
	ProfileQuick: {Trials: 2000, MaxWords: 16},
	// Matches the release drivers: long runs over vectors up to 0x7F words.
	ProfileFull: {Trials: 100000, MaxWords: 0x7F},
}

// LookupProfile returns the named profile and whether it exists.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ApplyProfileDefaults fills the zero-valued sizing fields of cfg from its
// profile and sizes the worker pool from the hardware. Fields set by a flag
// or environment variable are preserved.
func ApplyProfileDefaults(cfg AppConfig) AppConfig {
	p, ok := profiles[cfg.Profile]
	if !ok {
		p = profiles[ProfileQuick]
	}
	if cfg.Trials == 0 {
		cfg.Trials = p.Trials
	}
	if cfg.MaxWords == 0 {
		cfg.MaxWords = p.MaxWords
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers returns how many suites to run at once. VEC32_WORKERS_CAP
// caps the estimate on shared CI hosts.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()

	var workers int
	switch {
	case numCPU <= 2:
		workers = 1 // Leave a core for progress rendering.
	case numCPU <= 8:
		workers = numCPU - 1
	default:
		workers = numCPU
	}
	if limit := envInt("WORKERS_CAP", 0); limit > 0 && workers > limit {
		workers = limit
	}
	return workers
}
