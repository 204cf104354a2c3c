// Package parse reads valve networks from their line-oriented text form:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Each non-blank line declares one valve, its flow rate and its tunnels.
// Singular and plural wording ("tunnel leads to valve", "tunnels lead to
// valves") are both accepted. Blank lines are skipped.
//
// Errors:
//
//	ErrMalformedInput   – a line does not match the grammar, repeats a valve,
//	                      or carries an invalid rate/tunnel (1-based line number attached)
//	core.ErrUnknownValve – a tunnel names a valve that is never declared
package parse
