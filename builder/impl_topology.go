// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_topology.go - Path, Cycle, Star and Grid constructors.
//
// Determinism:
//   • Valves are added in index order via cfg.idFn / cfg.rateFn.
//   • Tunnels are emitted in a fixed order per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodGrid  = "Grid"

	minPathValves  = 1
	minCycleValves = 3
	minStarValves  = 2
	minGridDim     = 1
)

// Path builds a simple path 0—1—…—(n-1) (n ≥ 1).
// Complexity: O(n) valves + O(n-1) tunnels.
func Path(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minPathValves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathValves, ErrTooFewValves)
		}
		ids, err := addValves(net, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(net, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n (n ≥ 3).
// Complexity: O(n) valves + O(n) tunnels.
func Cycle(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minCycleValves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleValves, ErrTooFewValves)
		}
		ids, err := addValves(net, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(net, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub at index 0 and n-1 leaves (n ≥ 2).
// Complexity: O(n) valves + O(n-1) tunnels.
func Star(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minStarValves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarValves, ErrTooFewValves)
		}
		ids, err := addValves(net, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(net, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid; valve index is r*cols+c.
// Complexity: O(rows·cols) valves and tunnels.
func Grid(rows, cols int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewValves)
		}
		ids, err := addValves(net, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				// Right then Bottom, so the emission order is stable.
				if c+1 < cols {
					if err = connect(net, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(net, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
