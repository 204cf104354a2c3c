package dfs

import (
	"sort"

	"github.com/katalvlaran/valveflow/core"
)

// Reachable returns the valves reachable from start (start included),
// sorted by ID.
func Reachable(n *core.Network, start string, opts ...Option) ([]string, error) {
	res, err := DFS(n, start, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(res.Visited))
	for id := range res.Visited {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// Stranded returns the positive-rate valves that no walk from start can
// reach, sorted by ID. Their flow can never be released from start.
func Stranded(n *core.Network, start string, opts ...Option) ([]string, error) {
	res, err := DFS(n, start, opts...)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range n.Positive() {
		if !res.Visited[id] {
			out = append(out, id)
		}
	}

	return out, nil
}
