package dfs

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	net  *core.Network
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth-first search on n. With WithFullTraversal it covers
// every valve in ID order; otherwise it starts only from startID.
// Tunnels are visited in their sorted order, so results are deterministic.
func DFS(n *core.Network, startID string, opts ...Option) (*DFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !n.HasValve(startID) {
		return nil, fmt.Errorf("%w: %q: %w", ErrStartVertexNotFound, startID, core.ErrUnknownValve)
	}

	ids := n.IDs()
	res := &DFSResult{
		Order:   make([]string, 0, len(ids)),
		Depth:   make(map[string]int, len(ids)),
		Parent:  make(map[string]string, len(ids)),
		Visited: make(map[string]bool, len(ids)),
	}
	w := &dfsWalker{net: n, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, id := range ids {
			if res.Visited[id] {
				continue
			}
			if err := w.traverse(id, 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(startID, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits id at depth, then recurses into unvisited tunnel targets.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	tunnels, err := w.net.Tunnels(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Tunnels(%q): %w", id, err)
	}

	for _, next := range tunnels {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[next] {
			continue
		}
		if !w.net.HasValve(next) {
			w.res.Order = nil
			return fmt.Errorf("dfs: tunnel %q -> %q: %w", id, next, core.ErrUnknownValve)
		}
		w.res.Parent[next] = id
		if err = w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
