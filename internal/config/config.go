// Package config defines process configuration and its loading.
//
// Precedence, low to high: built-in defaults, optional YAML file named by
// TEAMSPLIT_CONFIG, environment variables prefixed TEAMSPLIT_, and finally
// any CLI flags the caller applies on top.
package config

import (
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// NumTeams is the number of equal-size teams to build.
	NumTeams int `koanf:"num_teams"`

	// Strategies is a comma-separated list of strategy names to run.
	Strategies string `koanf:"strategies"`

	// CustomWeights optionally replaces the built-in tier table, as
	// comma-separated TIER:INTEGER pairs.
	CustomWeights string `koanf:"custom_weights"`

	// Seed fixes the pseudorandom source of the random strategy;
	// 0 means time-based.
	Seed int64 `koanf:"seed"`

	// JSONOut optionally names a file for the JSON report.
	JSONOut string `koanf:"json_out"`

	// MetricsOut optionally names a Prometheus textfile for run metrics.
	MetricsOut string `koanf:"metrics_out"`

	// MaxIterations caps the optimizer's outer iterations.
	MaxIterations int `koanf:"max_iterations"`

	// NoImprovementLimit aborts the search after that many rejected
	// candidates in a row.
	NoImprovementLimit int `koanf:"no_improvement_limit"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Strategies:         "round_robin,random,cluster,snake",
		MaxIterations:      1000,
		NoImprovementLimit: 100,
	}
}

// StrategyList splits the strategies field into trimmed, non-empty names.
func (c *Config) StrategyList() []string {
	var out []string
	for _, s := range strings.Split(c.Strategies, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
