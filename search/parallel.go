package search

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// stats aggregates searcher counters across workers.
type stats struct {
	nodes int64
	hits  int64
}

func (st *stats) add(s *searcher) {
	atomic.AddInt64(&st.nodes, s.nodes)
	atomic.AddInt64(&st.hits, s.hits)
}

// branch is one top-level move of agent 1: open bit, arriving with left minutes.
type branch struct {
	bit  int
	left int
}

// branches lists the feasible first moves from row within time, in bit order.
func (p *plan) branches(row, time int) []branch {
	out := make([]branch, 0, p.k)
	base := row * p.k
	for bit := 0; bit < p.k; bit++ {
		d := p.dist[base+bit]
		if d == unreachable || d+1 > time {
			continue
		}
		out = append(out, branch{bit: bit, left: time - d - 1})
	}

	return out
}

// fanOut evaluates each task on its own searcher with at most workers
// goroutines and returns the maximum. Every task gets a private memo.
// The first error (including cancellation) cancels the remaining tasks.
func fanOut(ctx context.Context, p *plan, memo bool, workers int, st *stats, tasks []func(*searcher) int) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]int, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := newSearcher(gctx, p, memo)
			v := task(s)
			st.add(s)
			if s.err != nil {
				return s.err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	best := 0
	for _, v := range results {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// soloParallel splits Solo at its first move.
func soloParallel(ctx context.Context, p *plan, memo bool, workers int, st *stats, row, time int) (int, error) {
	if time == 0 || p.total == 0 {
		return 0, nil
	}
	st.nodes++

	bs := p.branches(row, time)
	tasks := make([]func(*searcher) int, 0, len(bs))
	for _, b := range bs {
		b := b
		mask := uint64(1) << uint(b.bit)
		gain := b.left * p.rates[b.bit]
		target := p.targets[b.bit]
		tasks = append(tasks, func(s *searcher) int {
			return gain + s.solo(target, b.left, mask)
		})
	}

	return fanOut(ctx, p, memo, workers, st, tasks)
}

// duoParallel splits Duo at agent 1's first move; the immediate stop
// branch (agent 2 alone) is one more task.
func duoParallel(ctx context.Context, p *plan, memo bool, workers int, st *stats, row1, time1, row2, time2 int) (int, error) {
	if (time1 == 0 && time2 == 0) || p.total == 0 {
		return 0, nil
	}
	st.nodes++

	bs := p.branches(row1, time1)
	tasks := make([]func(*searcher) int, 0, len(bs)+1)
	tasks = append(tasks, func(s *searcher) int {
		return s.solo(row2, time2, 0)
	})
	for _, b := range bs {
		b := b
		mask := uint64(1) << uint(b.bit)
		gain := b.left * p.rates[b.bit]
		target := p.targets[b.bit]
		tasks = append(tasks, func(s *searcher) int {
			return gain + s.duo(target, b.left, row2, time2, mask)
		})
	}

	return fanOut(ctx, p, memo, workers, st, tasks)
}
