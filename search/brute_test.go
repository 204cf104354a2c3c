package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// brute is a reference solver written against the string-keyed Index.
// Duo is computed as the best split of the valves into two disjoint sets,
// each worked by one agent alone.
type brute struct {
	idx    bfs.Index
	valves []string // positive-rate valves
	rates  map[string]int
	memo   map[bruteKey]int
}

type bruteKey struct {
	at    string
	time  int
	avail uint
}

func newBrute(t *testing.T, n *core.Network, idx bfs.Index) *brute {
	t.Helper()
	b := &brute{idx: idx, valves: n.Positive(), rates: map[string]int{}, memo: map[bruteKey]int{}}
	require.LessOrEqual(t, len(b.valves), 16)
	for _, id := range b.valves {
		r, err := n.Rate(id)
		require.NoError(t, err)
		b.rates[id] = r
	}
	return b
}

func (b *brute) all() uint { return 1<<uint(len(b.valves)) - 1 }

// solo is the best total from at within time, opening only valves in avail.
func (b *brute) solo(at string, time int, avail uint) int {
	key := bruteKey{at, time, avail}
	if v, ok := b.memo[key]; ok {
		return v
	}
	best := 0
	for i, id := range b.valves {
		if avail&(1<<uint(i)) == 0 {
			continue
		}
		d, ok := b.idx.Distance(at, id)
		if !ok || d+1 > time {
			continue
		}
		left := time - d - 1
		if v := left*b.rates[id] + b.solo(id, left, avail&^(1<<uint(i))); v > best {
			best = v
		}
	}
	b.memo[key] = best
	return best
}

func (b *brute) duo(start string, t1, t2 int) int {
	best := 0
	all := b.all()
	for s := uint(0); s <= all; s++ {
		if v := b.solo(start, t1, s) + b.solo(start, t2, all&^s); v > best {
			best = v
		}
	}
	return best
}
