// Package bfs provides breadth-first search over a core.Network,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores valves layer by layer from a start valve, with an optional
// visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// walker encapsulates mutable BFS state.
// frontier holds the current layer; next collects the layer being discovered.
type walker struct {
	network  *core.Network
	opts     BFSOptions
	ctx      context.Context
	frontier []string
	next     []string
	visited  map[string]bool
	res      *BFSResult
}

// BFS runs breadth-first search on n starting from startID,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for dangling tunnels,
// or any user-supplied hook error.
func BFS(n *core.Network, startID string, opts ...Option) (*BFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start valve
	if !n.HasValve(startID) {
		return nil, fmt.Errorf("%w: %q: %w", ErrStartVertexNotFound, startID, core.ErrUnknownValve)
	}

	size := n.ValveCount()
	w := &walker{
		network: n,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool, size),
		res: &BFSResult{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}

	// Seed the first layer with the start valve (no parent)
	w.discover(startID, 0, "")
	w.frontier, w.next = w.next, nil

	return w.res, w.loop()
}

// discover marks id visited at depth d, records its parent,
// and appends it to the layer under construction.
func (w *walker) discover(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.next = append(w.next, id)
}

// loop expands one layer per iteration until the frontier is empty,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		// cancellation check (once per layer)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		for _, id := range w.frontier {
			if err := w.visit(id, depth); err != nil {
				return err
			}
			if err := w.expand(id, depth); err != nil {
				return err
			}
		}
		w.frontier, w.next = w.next, nil
	}

	return nil
}

// visit records the valve in Order and calls OnVisit.
func (w *walker) visit(id string, depth int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// expand retrieves tunnels of id, applies filtering and MaxDepth,
// and discovers each unseen neighbor on the next layer.
// A tunnel to a valve missing from the network yields ErrNeighbors.
func (w *walker) expand(id string, depth int) error {
	nextDepth := depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	tunnels, err := w.network.Tunnels(id)
	if err != nil {
		return fmt.Errorf("%w: tunnels of %q: %w", ErrNeighbors, id, err)
	}
	for _, nbr := range tunnels {
		// cancellation check inside neighbor iteration
		if err = w.ctx.Err(); err != nil {
			return err
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}
		if !w.network.HasValve(nbr) {
			return fmt.Errorf("%w: tunnel %q -> %q: %w", ErrNeighbors, id, nbr, core.ErrUnknownValve)
		}
		w.discover(nbr, nextDepth, id)
	}

	return nil
}
