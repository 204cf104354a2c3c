package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// unreachable marks a missing Index entry in the dense distance table.
const unreachable = -1

// plan is the dense, read-only form of a network and its Index.
// It is shared by every searcher of a Solver and never mutated after compile.
type plan struct {
	ids  []string       // row → valve ID, ascending
	rows map[string]int // valve ID → row

	k       int   // number of positive-rate valves (bits in use)
	targets []int // bit → row of that valve
	rates   []int // bit → flow rate (> 0)

	// dist[row*k+bit] is the Index distance from row to targets[bit],
	// or unreachable.
	dist []int

	// total counts every valve, zero-rate ones included.
	total int
}

// compile snapshots n and idx into a plan.
// Errors: ErrTooManyValves, core.ErrUnknownValve (should idx and n disagree).
func compile(n *core.Network, idx bfs.Index) (*plan, error) {
	ids := n.IDs()
	positive := n.Positive()
	if len(positive) > MaxPositiveValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(positive), MaxPositiveValves)
	}

	p := &plan{
		ids:     ids,
		rows:    make(map[string]int, len(ids)),
		k:       len(positive),
		targets: make([]int, len(positive)),
		rates:   make([]int, len(positive)),
		dist:    make([]int, len(ids)*len(positive)),
		total:   len(ids),
	}
	for row, id := range ids {
		p.rows[id] = row
	}
	for bit, id := range positive {
		rate, err := n.Rate(id)
		if err != nil {
			return nil, err
		}
		p.targets[bit] = p.rows[id]
		p.rates[bit] = rate
	}
	for row, src := range ids {
		base := row * p.k
		for bit, dst := range positive {
			d, ok := idx.Distance(src, dst)
			if !ok {
				d = unreachable
			}
			p.dist[base+bit] = d
		}
	}

	return p, nil
}

// row resolves a valve ID to its row, or core.ErrUnknownValve.
func (p *plan) row(id string) (int, error) {
	r, ok := p.rows[id]
	if !ok {
		return 0, fmt.Errorf("search: start %q: %w", id, core.ErrUnknownValve)
	}

	return r, nil
}
