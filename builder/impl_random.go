// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_random.go - RandomSparse and RandomConnected constructors.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j, each tunnel
//     included independently with probability p.
//   - RandomConnected first lays a path backbone 0—1—…—(n-1), so every valve
//     is reachable, then samples extra tunnels the same way.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.
//   - Rates are drawn before tunnels, in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomValves       = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse samples tunnels over n valves with independent probability p.
// The result may be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		return randomTunnels(net, cfg, methodRandomSparse, n, p, false)
	}
}

// RandomConnected is RandomSparse plus a path backbone, so every valve is
// reachable from every other.
func RandomConnected(n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		return randomTunnels(net, cfg, methodRandomConnected, n, p, true)
	}
}

func randomTunnels(net *core.Network, cfg builderConfig, method string, n int, p float64, backbone bool) error {
	if n < minRandomValves {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomValves, ErrTooFewValves)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	// RNG is only required for true stochastic sampling.
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	ids, err := addValves(net, cfg, method, n)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := backbone && j == i+1
			if !include {
				switch {
				case p == probMax:
					include = true
				case p > probMin:
					include = cfg.rng.Float64() < p
				}
			}
			if !include {
				continue
			}
			if err = connect(net, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
