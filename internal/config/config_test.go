package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mjakub/bignum/internal/errors"
)

var testSuites = []string{"add_fuzz", "div_fuzz", "mul_fuzz", "mul_small_timing"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var errBuf bytes.Buffer
	return ParseConfig("vec32check", args, &errBuf, testSuites)
}

// ─────────────────────────────────────────────────────────────────────────────
// Flags
// ─────────────────────────────────────────────────────────────────────────────

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, DefaultSuite, cfg.Suite)
	assert.Equal(t, DefaultSeed, cfg.Seed)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, ProfileQuick, cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)

	quick, ok := LookupProfile(ProfileQuick)
	require.True(t, ok)
	assert.Equal(t, quick.Trials, cfg.Trials)
	assert.Equal(t, quick.MaxWords, cfg.MaxWords)
	assert.Positive(t, cfg.Workers)
}

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parse(t,
		"-s", "add_fuzz,div_fuzz",
		"--trials", "17",
		"--max-words", "3",
		"--seed", "42",
		"--workers", "2",
		"--timeout", "30s",
		"--profile", "FULL",
		"-v",
		"--no-color",
		"--metrics-file", "out.prom",
		"-o", "failures.txt",
		"--theme", "Light",
		"--completion", "zsh",
	)
	require.NoError(t, err)
	assert.Equal(t, "add_fuzz,div_fuzz", cfg.Suite)
	assert.Equal(t, 17, cfg.Trials)
	assert.Equal(t, 3, cfg.MaxWords)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, ProfileFull, cfg.Profile)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.Equal(t, "failures.txt", cfg.OutputFile)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "zsh", cfg.Completion)
}

func TestParseConfigHelp(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer
	_, err := ParseConfig("vec32check", []string{"-h"}, &errBuf, testSuites)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, errBuf.String(), "mul_small_timing")
}

func TestParseConfigRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"negative trials", []string{"--trials", "-1"}},
		{"negative words", []string{"--max-words", "-4"}},
		{"negative workers", []string{"--workers", "-1"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"unknown profile", []string{"--profile", "nightly"}},
		{"unknown log level", []string{"--log-level", "trace"}},
		{"unknown suite", []string{"--suite", "add_fuzz,pow_fuzz"}},
		{"empty suite", []string{"--suite", ""}},
		{"quiet with tui", []string{"-q", "--tui"}},
		{"repl with tui", []string{"--repl", "--tui"}},
		{"unknown theme", []string{"--theme", "solarized"}},
		{"unknown shell", []string{"--completion", "tcsh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
		})
	}
}

func TestSuiteSelectionKeywords(t *testing.T) {
	t.Parallel()

	for _, sel := range []string{"all", "fuzz", "timing", "mul_fuzz", " add_fuzz , div_fuzz"} {
		assert.NoError(t, validateSuiteSelection(sel, testSuites), sel)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Environment
// ─────────────────────────────────────────────────────────────────────────────

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VEC32_TRIALS", "55")
	t.Setenv("VEC32_SEED", "0x10")
	t.Setenv("VEC32_TIMEOUT", "1m")
	t.Setenv("VEC32_SUITE", "mul_fuzz")
	t.Setenv("VEC32_VERBOSE", "yes")
	t.Setenv("VEC32_MAX_WORDS", "not-a-number")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Trials)
	assert.Equal(t, uint64(16), cfg.Seed)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, "mul_fuzz", cfg.Suite)
	assert.True(t, cfg.Verbose)

	quick, _ := LookupProfile(ProfileQuick)
	assert.Equal(t, quick.MaxWords, cfg.MaxWords, "invalid values fall through to the profile")
}

func TestFlagsBeatEnvironment(t *testing.T) {
	t.Setenv("VEC32_TRIALS", "55")
	t.Setenv("VEC32_SUITE", "mul_fuzz")
	t.Setenv("VEC32_QUIET", "true")

	cfg, err := parse(t, "--trials", "9", "-s", "div_fuzz", "-q=false")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Trials)
	assert.Equal(t, "div_fuzz", cfg.Suite)
	assert.False(t, cfg.Quiet)
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBoolEnv(tt.in, tt.def), "parseBoolEnv(%q, %v)", tt.in, tt.def)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Profiles
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyProfileDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := ApplyProfileDefaults(AppConfig{Profile: ProfileFull, Trials: 3, Workers: 7})
	full, _ := LookupProfile(ProfileFull)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, full.MaxWords, cfg.MaxWords)
	assert.Equal(t, 7, cfg.Workers)
}

func TestApplyProfileDefaultsUnknownProfile(t *testing.T) {
	t.Parallel()

	cfg := ApplyProfileDefaults(AppConfig{Profile: "other"})
	quick, _ := LookupProfile(ProfileQuick)
	assert.Equal(t, quick.Trials, cfg.Trials)
}

func TestEstimateWorkersCap(t *testing.T) {
	t.Setenv("VEC32_WORKERS_CAP", "1")
	assert.Equal(t, 1, EstimateWorkers())
}
