package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride binds one VEC32_* variable to the flags that supersede it.
type envOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

// Builders for envOverride. Values that do not parse leave the field alone.

func intVar(key string, field func(*AppConfig) *int, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}}
}

func stringVar(key string, field func(*AppConfig) *string, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) { *field(c) = v }}
}

func boolVar(key string, field func(*AppConfig) *bool, flags ...string) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		*field(c) = parseBoolEnv(v, *field(c))
	}}
}

var envOverrides = []envOverride{
	intVar("TRIALS", func(c *AppConfig) *int { return &c.Trials }, "trials"),
	intVar("MAX_WORDS", func(c *AppConfig) *int { return &c.MaxWords }, "max-words"),
	intVar("WORKERS", func(c *AppConfig) *int { return &c.Workers }, "workers"),
	// Seeds are usually written in hex, so accept any base prefix.
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 0, 64); err == nil {
			c.Seed = n
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},

	stringVar("SUITE", func(c *AppConfig) *string { return &c.Suite }, "suite", "s"),
	stringVar("PROFILE", func(c *AppConfig) *string { return &c.Profile }, "profile"),
	stringVar("LOG_LEVEL", func(c *AppConfig) *string { return &c.LogLevel }, "log-level"),
	stringVar("METRICS_FILE", func(c *AppConfig) *string { return &c.MetricsFile }, "metrics-file"),
	stringVar("OUTPUT", func(c *AppConfig) *string { return &c.OutputFile }, "output", "o"),
	stringVar("THEME", func(c *AppConfig) *string { return &c.Theme }, "theme"),

	boolVar("QUIET", func(c *AppConfig) *bool { return &c.Quiet }, "quiet", "q"),
	boolVar("VERBOSE", func(c *AppConfig) *bool { return &c.Verbose }, "verbose", "v"),
	boolVar("TUI", func(c *AppConfig) *bool { return &c.TUI }, "tui"),
	boolVar("NO_COLOR", func(c *AppConfig) *bool { return &c.NoColor }, "no-color"),
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and returns
// def for anything else.
func parseBoolEnv(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return def
}

// applyEnvOverrides copies VEC32_* values into config for every setting
// that was not given on the command line, so flags win over the
// environment and the environment wins over profile defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

overrides:
	for _, o := range envOverrides {
		for _, name := range o.flags {
			if explicit[name] {
				continue overrides
			}
		}
		if v := os.Getenv(EnvPrefix + o.key); v != "" {
			o.apply(config, v)
		}
	}
}

// envInt reads EnvPrefix+key as an int, falling back to def.
func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(EnvPrefix + key)); err == nil {
		return n
	}
	return def
}
