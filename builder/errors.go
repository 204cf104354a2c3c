// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewValves indicates that a size parameter (n, rows, cols) is smaller
// than the minimum the constructor accepts.
var ErrTooFewValves = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs a *rand.Rand
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction step could not be completed,
// including a nil Constructor passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
