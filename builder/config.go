// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn  ("0","1","2",...)
//   • rng    = nil          (pure/deterministic unless seeded)
//   • rateFn = zero rate for every valve

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Valve ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Flow rate generator, called once per created valve in index order.
	rateFn RateFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		rateFn: func(int, *rand.Rand) int { return 0 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
