// Package builder provides deterministic constructors for valve networks used
// in tests, benchmarks and examples.
//
// What
//
//   - BuildNetwork(opts, cons...) creates an empty core.Network, resolves the
//     builder configuration and applies each Constructor in order.
//   - Topologies: Path, Cycle, Star, Grid, RandomSparse, RandomConnected.
//   - Sample: the canonical ten-valve puzzle network (start "AA").
//
// Determinism
//
//	Same options, same seed and same constructor order ⇒ identical networks.
//	Valve IDs come from the configured IDFn; rates from the configured RateFn.
//
// Options
//
//   - WithIDScheme(fn): index → valve ID (default decimal "0","1",...).
//   - WithRateFn(fn):   index, rng → flow rate (default 0 for every valve).
//   - WithRates(r...):  fixed rates by index (missing indices get 0).
//   - WithSeed(seed) / WithRand(rng): randomness for Random* constructors and RateFn.
//
// Errors
//
//   - ErrTooFewValves, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//     plus wrapped core errors.
package builder
