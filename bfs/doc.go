// Package bfs provides breadth-first search over a core.Network and the
// all-pairs shortest-path Index built from it.
//
// What
//
//   - BFS explores valves layer by layer from a start valve and returns a
//     BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  map from valve → tunnel count from start
//   - Parent: map from valve → its predecessor in the BFS tree
//   - ShortestPaths runs one BFS per valve and keeps, for every source, the
//     distance to every other reachable valve. The source itself is never
//     recorded, so every stored distance is ≥ 1; unreachable valves are absent.
//
// Why
//
//   - Tunnels have unit cost, so BFS layers are exact shortest-path distances.
//   - The search package reads the Index millions of times; it is built once
//     and shared read-only.
//
// Determinism
//
//	core.Network.Tunnels returns neighbors sorted by ID and BFS expands them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Valves|, T = |Tunnels|)
//
//   - BFS:           Time O(V + T), Memory O(V)
//   - ShortestPaths: Time O(V·(V + T)), Memory O(V²)
//
// Usage
//
//	res, err := bfs.BFS(n, "AA", bfs.WithMaxDepth(3))
//	idx, err := bfs.ShortestPaths(n)
//	d, ok := idx.Distance("AA", "JJ") // ok == false ⇒ unreachable
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per layer and per neighbor.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn): skip tunnels for which fn(curr, next) == false.
//   - WithOnVisit(fn):        hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrNetworkNil           if the network pointer is nil.
//   - ErrStartVertexNotFound  if the start valve does not exist (also matches core.ErrUnknownValve).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if a tunnel leads to a valve missing from the network
//     (also matches core.ErrUnknownValve).
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
