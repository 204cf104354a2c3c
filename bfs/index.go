package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valveflow/core"
)

// Index maps a source valve to the tunnel distance of every other valve
// reachable from it. Distances are 1-indexed: a direct neighbor is at 1.
// The source never appears in its own row, and unreachable valves are absent;
// callers must treat a missing entry as infeasible, never as zero.
type Index map[string]map[string]int

// ShortestPaths builds the Index by running one layered BFS per valve.
// Options are forwarded to every BFS run (WithContext for cancellation,
// WithMaxDepth to cap recorded distances, WithFilterNeighbor to hide tunnels).
//
// Errors:
//   - ErrNetworkNil if n is nil.
//   - ErrNeighbors wrapping core.ErrUnknownValve if any tunnel is dangling.
//   - ErrOptionViolation and context errors as for BFS.
//
// Complexity: Time O(V·(V+T)), Space O(V²).
func ShortestPaths(n *core.Network, opts ...Option) (Index, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Fail on any dangling tunnel, including ones outside the reachable part
	// of every component, before doing the quadratic work.
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNeighbors, err)
	}

	ids := n.IDs()
	idx := make(Index, len(ids))
	for _, src := range ids {
		res, err := BFS(n, src, opts...)
		if err != nil {
			return nil, fmt.Errorf("bfs: shortest paths from %q: %w", src, err)
		}
		row := make(map[string]int, len(res.Depth))
		for dst, d := range res.Depth {
			if dst == src {
				continue
			}
			row[dst] = d
		}
		idx[src] = row
	}

	return idx, nil
}

// Distance returns the number of tunnels on the shortest path from → to.
// ok is false when to is unreachable, when either valve is unknown, or when
// from == to.
func (idx Index) Distance(from, to string) (d int, ok bool) {
	row, found := idx[from]
	if !found {
		return 0, false
	}
	d, ok = row[to]

	return d, ok
}

// Sources returns the source valve IDs in ascending order.
func (idx Index) Sources() []string {
	out := make([]string, 0, len(idx))
	for src := range idx {
		out = append(out, src)
	}
	sort.Strings(out)

	return out
}

// Destinations returns the valves reachable from src in ascending order.
func (idx Index) Destinations(src string) []string {
	row := idx[src]
	out := make([]string, 0, len(row))
	for dst := range row {
		out = append(out, dst)
	}
	sort.Strings(out)

	return out
}
