// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil functions);
//     constructors themselves never panic and return sentinel errors.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// network construction begins.
type BuilderOption func(*builderConfig)

// RateFn generates the flow rate of the valve with the given index.
// It must be deterministic for a given index and RNG state.
type RateFn func(idx int, rng *rand.Rand) int

// WithIDScheme sets the deterministic valve ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRateFn overrides the per-valve rate generator. Negative rates are
// rejected by core at construction time. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) { c.rateFn = fn }
}

// WithRates assigns fixed rates by valve index; indices beyond the slice get 0.
func WithRates(rates ...int) BuilderOption {
	fixed := append([]int(nil), rates...)
	return WithRateFn(func(idx int, _ *rand.Rand) int {
		if idx < len(fixed) {
			return fixed[idx]
		}
		return 0
	})
}

// UniformRates draws each rate uniformly from [lo, hi]. A zero lo leaves
// some valves worthless, which the search must skip. Requires an RNG at
// construction time; without one every valve gets lo.
func UniformRates(lo, hi int) RateFn {
	if lo < 0 || hi < lo {
		panic("builder: UniformRates requires 0 <= lo <= hi")
	}
	return func(_ int, rng *rand.Rand) int {
		if rng == nil {
			return lo
		}
		return lo + rng.Intn(hi-lo+1)
	}
}
