// Package search maximizes the value released from a valve network within a
// time budget, for one agent (Solo) or two cooperating agents (Duo).
//
// Model
//
//	Every valve has a flow rate. Moving through a tunnel costs one minute and
//	opening a valve costs one more. A valve opened with r minutes left
//	releases rate·r in total. An agent therefore only ever travels straight to
//	the next valve it will open, along a shortest path from the bfs.Index.
//
// Solo
//
//	maximize(current, time, opened) takes the best over every unopened
//	positive-rate valve t with distance(current,t)+1 ≤ time of
//
//	    (time−d−1)·rate(t) + maximize(t, time−d−1, opened ∪ {t})
//
//	and is 0 when no such t exists.
//
// Duo
//
//	maximizeDuo(loc1, time1, loc2, time2, opened) adds a "stop" branch at every
//	depth: agent 1 stops and agent 2 runs a full Solo search from its own
//	position and clock over the valves still closed. Taking the maximum over
//	all depths enumerates every split of the valves between the two agents.
//
// Representation
//
//	Positive-rate valves are numbered 0..k−1 in ID order and the set of opened
//	valves is a uint64 bitmask, so a branch copies its exclusivity set by value.
//	Distances live in a dense row-major table (row = any valve, column = bit),
//	with −1 for unreachable pairs. At most 64 positive-rate valves are
//	supported (ErrTooManyValves).
//
// Performance
//
//	Both searches are exponential in the number of positive-rate valves.
//	WithMemo (default on) caches Solo on (valve, time, opened) and Duo on
//	(valve1, time1, opened); agent 2's position and clock never change during
//	one Duo call, which makes the Duo key exact. WithWorkers(n) fans the
//	top-level branches out over n goroutines; results are identical.
//
// Observability
//
//	Each call opens an OpenTelemetry span ("search.Solo", "search.Duo") and
//	updates Prometheus counters for searches, expanded nodes and memo hits.
//	Debug logs go to the slog.Logger given via WithLogger.
package search
