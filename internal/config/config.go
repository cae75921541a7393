// Package config defines the engine configuration and loading hooks.
//
// The reference-athlete parameters live here as one explicit structure so
// they can be tuned without touching the computation packages. Terrain
// thresholds and coefficients are deliberately NOT configurable; they are
// fixed constants of the metric.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Reference-athlete profile. The PLS ceiling every activity is
	// measured against.
	RideBaseSpeedKmh    float64 `koanf:"ride_base_speed_kmh"`
	RideClimbPenaltyMin float64 `koanf:"ride_climb_penalty_min"`
	RunBaseSpeedKmh     float64 `koanf:"run_base_speed_kmh"`
	RunClimbPenaltyMin  float64 `koanf:"run_climb_penalty_min"`

	// TopScores sets how many of a user's best results feed the overall
	// summary score.
	TopScores int `koanf:"top_scores"`

	// MetricsEnabled toggles Prometheus instrumentation.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		RideBaseSpeedKmh:    55,
		RideClimbPenaltyMin: 0.3,
		RunBaseSpeedKmh:     20,
		RunClimbPenaltyMin:  0.5,
		TopScores:           6,
		MetricsEnabled:      true,
	}
}
