// Package valveflow finds how much pressure can be released from a network
// of valves within a time budget, by one agent or by two agents working in
// parallel on independent clocks.
//
// What is in the box?
//
//	A small, deterministic toolkit that brings together:
//		• Network model: valves with flow rates, unit-cost tunnels, closed-graph validation
//		• Shortest-path index: one layered BFS per valve
//		• Search: exact Solo and Duo maximization over a 64-bit exclusivity mask
//		• Parsing: the line-oriented "Valve AA has flow rate=0; ..." format
//		• Builders: canonical sample plus path, cycle, star, grid and random networks
//
// Layout:
//
//	core/          - Valve and Network types, thread-safe construction and queries
//	bfs/           - layered BFS and the all-pairs shortest-path Index
//	dfs/           - depth-first traversal, reachability and stranded valves
//	search/        - Solver with Solo, Duo and DuoFrom; memo, workers, tracing, metrics
//	parse/         - text reader for valve networks
//	builder/       - deterministic network constructors for tests and benchmarks
//	config/        - YAML + environment configuration for the command
//	cmd/valveflow/ - the solve, paths and inspect commands
//
// Quick example, the canonical sample:
//
//	n, _ := builder.BuildNetwork(nil, builder.Sample())
//	sv, _ := search.NewSolver(n)
//	solo, _ := sv.Solo("AA", 30)    // 1651
//	duo, _ := sv.Duo("AA", 26, 26)  // 1707
//
//	go install github.com/katalvlaran/valveflow/cmd/valveflow@latest
package valveflow
