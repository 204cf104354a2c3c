// Package core_test verifies thread-safety of core.Network under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/core"
)

// TestConcurrentConnect ensures that concurrent Connect calls are safe and
// every tunnel appears exactly once.
func TestConcurrentConnect(t *testing.T) {
	n := core.NewNetwork()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, n.Connect("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	ts, err := n.Tunnels("X")
	require.NoError(t, err)
	require.Len(t, ts, num)
	require.Equal(t, num+1, n.ValveCount())
}

// TestConcurrentReadsAndClone validates that queries and clones do not race.
func TestConcurrentReadsAndClone(t *testing.T) {
	n := core.NewNetwork()
	for i := 0; i < 50; i++ {
		require.NoError(t, n.AddValve(fmt.Sprintf("V%d", i), i, "Hub"))
		require.NoError(t, n.AddValve("Hub", 0, fmt.Sprintf("V%d", i)))
	}

	const readers, cloners = 50, 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			ts, err := n.Tunnels("Hub")
			require.NoError(t, err)
			require.Len(t, ts, 50)
			require.Len(t, n.Positive(), 49)
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			require.NoError(t, n.Clone().Validate())
		}()
	}

	wg.Wait()
}
