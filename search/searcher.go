package search

import (
	"context"
	"math/bits"
)

// ctxCheckMask sets how often the context is polled: every 4096 expanded nodes.
const ctxCheckMask = 4095

// memoKey identifies a subproblem. For Solo it is (valve, time, opened);
// for Duo it is agent 1's (valve, time, opened), agent 2 being fixed per call.
type memoKey struct {
	row    int
	time   int
	opened uint64
}

// searcher holds the mutable state of one search call (or one worker of a
// parallel call). It must not be shared between goroutines.
type searcher struct {
	p   *plan
	ctx context.Context

	memo     bool
	soloMemo map[memoKey]int
	duoMemo  map[memoKey]int

	steps int
	nodes int64
	hits  int64
	err   error
}

func newSearcher(ctx context.Context, p *plan, memo bool) *searcher {
	s := &searcher{p: p, ctx: ctx, memo: memo}
	if memo {
		s.soloMemo = make(map[memoKey]int)
		s.duoMemo = make(map[memoKey]int)
	}

	return s
}

// halted performs a sparse context check and reports whether the search
// must unwind. Once halted, every call returns 0 and the caller discards
// the value in favor of s.err.
func (s *searcher) halted() bool {
	if s.err != nil {
		return true
	}
	s.steps++
	if s.steps&ctxCheckMask == 0 {
		s.err = s.ctx.Err()
	}

	return s.err != nil
}

// exhausted is the literal "everything opened" termination: the popcount of
// opened is compared against the count of all valves, zero-rate included.
func (s *searcher) exhausted(opened uint64) bool {
	return bits.OnesCount64(opened) == s.p.total
}

// solo returns the best value one agent at row can still release in time
// minutes, given the valves in opened are already taken.
func (s *searcher) solo(row, time int, opened uint64) int {
	if time == 0 || s.exhausted(opened) {
		return 0
	}
	if s.halted() {
		return 0
	}

	key := memoKey{row: row, time: time, opened: opened}
	if s.memo {
		if v, ok := s.soloMemo[key]; ok {
			s.hits++
			return v
		}
	}
	s.nodes++

	p := s.p
	best := 0
	base := row * p.k
	for bit := 0; bit < p.k; bit++ {
		mask := uint64(1) << uint(bit)
		if opened&mask != 0 {
			continue
		}
		d := p.dist[base+bit]
		if d == unreachable || d+1 > time {
			continue
		}
		left := time - d - 1
		gain := left*p.rates[bit] + s.solo(p.targets[bit], left, opened|mask)
		if gain > best {
			best = gain
		}
	}

	if s.memo && s.err == nil {
		s.soloMemo[key] = best
	}

	return best
}

// duo returns the best combined value when agent 1 (row1, time1) may keep
// opening valves or stop at any point and hand the rest of the network to
// agent 2 (row2, time2), which then searches alone.
// row2 and time2 must stay fixed for the lifetime of the searcher's duo memo.
func (s *searcher) duo(row1, time1, row2, time2 int, opened uint64) int {
	if (time1 == 0 && time2 == 0) || s.exhausted(opened) {
		return 0
	}
	if s.halted() {
		return 0
	}

	key := memoKey{row: row1, time: time1, opened: opened}
	if s.memo {
		if v, ok := s.duoMemo[key]; ok {
			s.hits++
			return v
		}
	}
	s.nodes++

	// Stop branch: agent 1 is done, agent 2 finishes alone.
	best := s.solo(row2, time2, opened)

	p := s.p
	base := row1 * p.k
	for bit := 0; bit < p.k; bit++ {
		mask := uint64(1) << uint(bit)
		if opened&mask != 0 {
			continue
		}
		d := p.dist[base+bit]
		if d == unreachable || d+1 > time1 {
			continue
		}
		left := time1 - d - 1
		gain := left*p.rates[bit] + s.duo(p.targets[bit], left, row2, time2, opened|mask)
		if gain > best {
			best = gain
		}
	}

	if s.memo && s.err == nil {
		s.duoMemo[key] = best
	}

	return best
}
