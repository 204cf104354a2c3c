package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/dfs"
)

// oneWay builds A→B→C plus a stray D→A; tunnels only go as listed.
func oneWay(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	require.NoError(t, n.AddValve("A", 0, "B"))
	require.NoError(t, n.AddValve("B", 3, "C"))
	require.NoError(t, n.AddValve("C", 0))
	require.NoError(t, n.AddValve("D", 9, "A"))
	return n
}

func TestDFS_NilNetwork(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewNetwork(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrUnknownValve)
}

func TestDFS_PostOrderOnPath(t *testing.T) {
	n, err := builder.BuildNetwork(nil, builder.Path(4))
	require.NoError(t, err)

	res, err := dfs.DFS(n, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1", "0"}, res.Order)
	assert.Equal(t, 3, res.Depth["3"])
	assert.Equal(t, "2", res.Parent["3"])
	_, isChild := res.Parent["0"]
	assert.False(t, isChild)
}

func TestDFS_FollowsTunnelDirection(t *testing.T) {
	res, err := dfs.DFS(oneWay(t), "A")
	require.NoError(t, err)
	assert.False(t, res.Visited["D"])
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(oneWay(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 4)
	assert.Equal(t, []string{"C", "B", "A", "D"}, res.Order)
	assert.Equal(t, 0, res.Depth["D"])
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	n, err := builder.BuildNetwork(nil, builder.Sample())
	require.NoError(t, err)

	res, err := dfs.DFS(n, "AA", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"AA"}, res.Order)

	res, err = dfs.DFS(n, "AA", dfs.WithFilterNeighbor(func(id string) bool { return id != "II" }))
	require.NoError(t, err)
	assert.False(t, res.Visited["JJ"])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HooksAbort(t *testing.T) {
	boom := errors.New("boom")
	n, err := builder.BuildNetwork(nil, builder.Sample())
	require.NoError(t, err)

	res, err := dfs.DFS(n, "AA", dfs.WithOnVisit(func(id string) error {
		if id == "EE" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	_, err = dfs.DFS(n, "AA", dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_DanglingTunnel(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddValve("A", 0, "Z"))

	_, err := dfs.DFS(n, "A")
	assert.ErrorIs(t, err, core.ErrUnknownValve)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(oneWay(t), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachableAndStranded(t *testing.T) {
	n := oneWay(t)

	got, err := dfs.Reachable(n, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, got)

	stranded, err := dfs.Stranded(n, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, stranded)

	stranded, err = dfs.Stranded(n, "D")
	require.NoError(t, err)
	assert.Empty(t, stranded)

	_, err = dfs.Stranded(n, "nope")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}
