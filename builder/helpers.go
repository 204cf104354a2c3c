// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// helpers.go - small shared routines for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// builderErrorf prefixes a formatted message with the constructor name and
// wraps err so callers can still use errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// addValves inserts valves 0..n-1 with IDs from cfg.idFn and rates from
// cfg.rateFn, in ascending index order, and returns their IDs.
// Complexity: O(n) time, O(n) space for the returned IDs.
func addValves(n *core.Network, cfg builderConfig, method string, count int) ([]string, error) {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		id := cfg.idFn(i)
		if err := n.AddValve(id, cfg.rateFn(i, cfg.rng)); err != nil {
			return nil, builderErrorf(method, err, "AddValve(%s)", id)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds a bidirectional tunnel, wrapping failures with method context.
func connect(n *core.Network, method, a, b string) error {
	if err := n.Connect(a, b); err != nil {
		return builderErrorf(method, err, "Connect(%s,%s)", a, b)
	}

	return nil
}
