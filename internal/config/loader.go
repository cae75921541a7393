package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if PEAKLINE_CONFIG is set
//  3. env (prefix PEAKLINE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PEAKLINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PEAKLINE_LOG_LEVEL, PEAKLINE_TOP_SCORES, ...
	// Map env keys like PEAKLINE_TOP_SCORES -> top_scores (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PEAKLINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "peakline_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces the invariants the computation packages rely on.
func (c *Config) validate() error {
	if c.RideBaseSpeedKmh <= 0 || c.RunBaseSpeedKmh <= 0 {
		return fmt.Errorf("%w: base speeds must be positive", ErrInvalidConfig)
	}
	if c.RideClimbPenaltyMin < 0 || c.RunClimbPenaltyMin < 0 {
		return fmt.Errorf("%w: climb penalties must not be negative", ErrInvalidConfig)
	}
	if c.TopScores <= 0 {
		return fmt.Errorf("%w: top_scores must be positive", ErrInvalidConfig)
	}
	return nil
}
