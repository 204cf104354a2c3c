// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates the network,
//     resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they preserve determinism for the same config and call order.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a new core.Network, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildNetwork: %w" and returned immediately.
//
// The result is validated (closed graph) before it is returned.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(V+T) validation.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return n, nil
}
