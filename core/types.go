// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Valve and Network types, sentinel errors and the NewNetwork constructor.
// Policy:
//   - No algorithms here; lifecycle and query methods live in methods.go.
//   - Network is guarded by one RWMutex; all exported methods are safe for concurrent use.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for valve network operations.
var (
	// ErrEmptyValveID indicates that a valve was given an empty ID.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrNegativeRate indicates a flow rate below zero.
	ErrNegativeRate = errors.New("core: flow rate is negative")

	// ErrSelfTunnel indicates a tunnel from a valve back to itself.
	ErrSelfTunnel = errors.New("core: tunnel to self not allowed")

	// ErrUnknownValve indicates a referenced valve does not exist in the network.
	// It covers both dangling tunnels and unknown start valves.
	ErrUnknownValve = errors.New("core: unknown valve")
)

// Valve is a node of the network.
//
// Rate is the value credited per remaining time unit once the valve is opened.
// Tunnels lists the IDs reachable in a single time unit, sorted ascending.
type Valve struct {
	// ID uniquely identifies this Valve within its Network.
	ID string

	// Rate is the non-negative flow rate.
	Rate int

	// Tunnels holds neighbor IDs, sorted and without duplicates.
	Tunnels []string
}

// Network is the in-memory valve graph.
//
// mu protects valves. Tunnel slices are never shared with callers:
// accessors hand out copies.
type Network struct {
	mu     sync.RWMutex
	valves map[string]*Valve // valve ID → Valve
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{valves: make(map[string]*Valve)}
}
