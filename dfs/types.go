package dfs

import (
	"context"
	"errors"
)

var (
	// ErrNetworkNil is returned when a nil *core.Network is passed.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrStartVertexNotFound indicates that the start valve does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+T) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a valve is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a valve have
	// been explored (post-order), before appending to result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start valve. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each tunnel target before
	// recursing. Return false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited valve in ID order.
	FullTraversal bool

	// SkippedNeighbors counts targets rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start valve.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips tunnel targets for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every valve, restarting from each unvisited one.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records valves in the sequence they finished (post-order).
	Order []string

	// Depth maps each valve to its tree depth from its root.
	Depth map[string]int

	// Parent maps each valve to the valve it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags the valves reached.
	Visited map[string]bool

	// SkippedNeighbors mirrors DFSOptions.SkippedNeighbors.
	SkippedNeighbors int
}
