// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Valve lifecycle, tunnel wiring and deterministic queries.
//
// Determinism:
//   - IDs(), Positive() and Tunnels() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Catalog protected by mu; writers take the write lock, queries the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddValve registers a valve with the given rate and merges tunnels into its
// neighbor list. Tunnel targets are not required to exist yet; the closed-graph
// invariant is checked by Validate once construction is complete.
//
// Implementation:
//   - Stage 1: Validate ID, rate and tunnel targets (no self-tunnels, no empty IDs).
//   - Stage 2: Under the write lock, create the valve if missing and set its rate.
//   - Stage 3: Merge tunnels, keeping the list sorted and unique.
//
// Behavior highlights:
//   - Re-adding an existing valve overwrites its rate and keeps earlier tunnels.
//
// Errors:
//   - ErrEmptyValveID: id or any tunnel target is "".
//   - ErrNegativeRate: rate < 0.
//   - ErrSelfTunnel:   a tunnel target equals id.
//
// Complexity:
//   - Time O((d+k)·log(d+k)) for d existing and k new tunnels, Space O(d+k).
func (n *Network) AddValve(id string, rate int, tunnels ...string) error {
	if id == "" {
		return ErrEmptyValveID
	}
	if rate < 0 {
		return fmt.Errorf("%w: valve %q has rate %d", ErrNegativeRate, id, rate)
	}
	for _, t := range tunnels {
		if t == "" {
			return fmt.Errorf("%w: tunnel from %q", ErrEmptyValveID, id)
		}
		if t == id {
			return fmt.Errorf("%w: %q", ErrSelfTunnel, id)
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	v := n.ensure(id)
	v.Rate = rate
	v.Tunnels = mergeSorted(v.Tunnels, tunnels)

	return nil
}

// Connect adds a bidirectional tunnel a—b. Missing endpoints are created with
// a zero rate, so Connect alone always yields a closed network.
//
// Errors:
//   - ErrEmptyValveID: a or b is "".
//   - ErrSelfTunnel:   a == b.
//
// Complexity: O(d·log d) for the larger of the two neighbor lists.
func (n *Network) Connect(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyValveID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfTunnel, a)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	va, vb := n.ensure(a), n.ensure(b)
	va.Tunnels = mergeSorted(va.Tunnels, []string{b})
	vb.Tunnels = mergeSorted(vb.Tunnels, []string{a})

	return nil
}

// Valve returns a copy of the valve with the given ID.
func (n *Network) Valve(id string) (Valve, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.valves[id]
	if !ok {
		return Valve{}, false
	}

	return Valve{ID: v.ID, Rate: v.Rate, Tunnels: append([]string(nil), v.Tunnels...)}, true
}

// HasValve reports whether id is present (empty ID ⇒ false).
func (n *Network) HasValve(id string) bool {
	if id == "" {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.valves[id]

	return ok
}

// Rate returns the flow rate of id, or ErrUnknownValve.
func (n *Network) Rate(id string) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.valves[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}

	return v.Rate, nil
}

// Tunnels returns the sorted neighbor IDs of id, or ErrUnknownValve.
// The returned slice is a copy and may be modified by the caller.
func (n *Network) Tunnels(id string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v, ok := n.valves[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}

	return append([]string(nil), v.Tunnels...), nil
}

// IDs returns every valve ID in ascending order.
// Complexity: O(V·log V).
func (n *Network) IDs() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.valves))
	for id := range n.valves {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Positive returns the IDs of valves with Rate > 0 in ascending order.
// These are the only valves worth opening.
func (n *Network) Positive() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.valves))
	for id, v := range n.valves {
		if v.Rate > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// ValveCount returns the number of valves, including zero-rate ones.
func (n *Network) ValveCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.valves)
}

// Validate checks the closed-graph invariant: every tunnel must lead to a
// valve present in the catalog. Valves are scanned in ID order, so the
// reported violation is deterministic.
//
// Errors:
//   - ErrUnknownValve wrapped with the offending tunnel.
//
// Complexity: O(V·log V + T).
func (n *Network) Validate() error {
	ids := n.IDs()

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, id := range ids {
		for _, t := range n.valves[id].Tunnels {
			if _, ok := n.valves[t]; !ok {
				return fmt.Errorf("%w: tunnel %q -> %q", ErrUnknownValve, id, t)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the network.
// Complexity: O(V+T).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := &Network{valves: make(map[string]*Valve, len(n.valves))}
	for id, v := range n.valves {
		c.valves[id] = &Valve{ID: v.ID, Rate: v.Rate, Tunnels: append([]string(nil), v.Tunnels...)}
	}

	return c
}

// ensure returns the valve for id, creating a zero-rate entry if missing.
// Caller must hold the write lock.
func (n *Network) ensure(id string) *Valve {
	v, ok := n.valves[id]
	if !ok {
		v = &Valve{ID: id}
		n.valves[id] = v
	}

	return v
}

// mergeSorted returns the sorted union of a (already sorted, unique) and b.
func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range b {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
