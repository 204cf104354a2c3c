// Package core provides the valve network: a thread-safe, in-memory graph of
// valves connected by unit-cost tunnels.
//
// The Network N = (V,T) holds:
//
//   - Valves keyed by an opaque string ID, each with a non-negative flow rate.
//   - Tunnels stored per valve as a sorted, de-duplicated neighbor list.
//     Tunnels are traversed in one time unit; there are no weights.
//   - A single sync.RWMutex guarding the valve catalog during construction.
//
// Why use core.Network?
//
//   - Deterministic iteration: IDs(), Positive() and Tunnels() return sorted results.
//   - Closed-graph validation: Validate() reports the first tunnel that points
//     at a valve missing from the catalog (ErrUnknownValve).
//   - Clone support: Clone() deep-copies the catalog for callers that need a private copy.
//
// Core Methods:
//
//	// Construction
//	AddValve(id string, rate int, tunnels ...string) error  // O(d·log d)
//	Connect(a, b string) error                              // O(d)
//
//	// Query
//	Valve(id string) (Valve, bool)          // O(d) copy of tunnels
//	HasValve(id string) bool                // O(1)
//	Rate(id string) (int, error)            // O(1)
//	Tunnels(id string) ([]string, error)    // O(d)
//	IDs() []string                          // O(V·log V)
//	Positive() []string                     // O(V·log V)
//	ValveCount() int                        // O(1)
//
//	// Invariants
//	Validate() error                        // O(V+T)
//	Clone() *Network                        // O(V+T)
//
// Errors:
//
//	ErrEmptyValveID  – zero-length valve ID
//	ErrNegativeRate  – flow rate below zero
//	ErrSelfTunnel    – tunnel from a valve to itself
//	ErrUnknownValve  – referenced valve is not in the catalog
//
// A Network is meant to be built once and then treated as immutable: the
// search packages snapshot it and never observe later mutations.
package core
