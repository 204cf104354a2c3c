// Package dfs implements depth-first search over a core.Network, following
// tunnels in the direction they are listed.
//
// Key features:
//   - DFS(n, startID, opts...): traverse from one valve, or every valve via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Reachable / Stranded: which valves an agent starting at a valve can ever get to
//
// Complexity:
//
//   - Time:   O(V + T) for traversal (V = valves, T = tunnels), plus hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrNetworkNil             if n is nil.
//   - ErrStartVertexNotFound    if startID is missing (wraps core.ErrUnknownValve).
//   - core.ErrUnknownValve      if a tunnel leads to a valve that does not exist.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
