// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Solver construction and the Solo / Duo entry points.
//
// Flow per call:
//   - Stage 1: validate start valves and budgets.
//   - Stage 2: open a span, run sequentially (Workers == 1) or fanned out.
//   - Stage 3: record metrics, log at Debug, map cancellation to ctx.Err().

package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/valveflow/bfs"
	"github.com/katalvlaran/valveflow/core"
)

// Solver answers Solo and Duo queries over one snapshot of a network.
// A Solver is immutable after NewSolver and safe for concurrent use; every
// call allocates its own memo.
type Solver struct {
	index bfs.Index
	plan  *plan
	opts  Options
}

// NewSolver builds the shortest-path Index of n and compiles it for search.
// Later mutations of n are not observed.
//
// Errors:
//   - ErrNetworkNil:      n is nil.
//   - ErrOptionViolation: an Option was invalid.
//   - ErrTooManyValves:   more than MaxPositiveValves positive-rate valves.
//   - bfs errors (dangling tunnel, context cancellation) from ShortestPaths.
func NewSolver(n *core.Network, opts ...Option) (*Solver, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	idx, err := bfs.ShortestPaths(n, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("search: index: %w", err)
	}
	p, err := compile(n, idx)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("solver_ready",
		slog.Int("valves", p.total),
		slog.Int("positive", p.k),
		slog.Int("workers", o.Workers),
		slog.Bool("memo", o.Memo),
	)

	return &Solver{index: idx, plan: p, opts: o}, nil
}

// Index returns the shortest-path table the Solver searches over.
// The map is shared; callers must not modify it.
func (sv *Solver) Index() bfs.Index {
	return sv.index
}

// Solo returns the maximum total released by one agent that starts at start
// with budget minutes. Zero budget yields 0.
//
// Errors: core.ErrUnknownValve, ErrNegativeBudget, context errors.
func (sv *Solver) Solo(start string, budget int) (int, error) {
	row, err := sv.plan.row(start)
	if err != nil {
		return 0, err
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}

	return sv.run(modeSolo, []attribute.KeyValue{
		attribute.String("start", start),
		attribute.Int("budget", budget),
	}, func(ctx context.Context, st *stats) (int, error) {
		if sv.opts.Workers > 1 {
			return soloParallel(ctx, sv.plan, sv.opts.Memo, sv.opts.Workers, st, row, budget)
		}
		s := newSearcher(ctx, sv.plan, sv.opts.Memo)
		v := s.solo(row, budget, 0)
		st.add(s)
		return v, s.err
	})
}

// Duo returns the maximum combined total of two agents that both start at
// start, with budgets budget1 and budget2. No valve is credited twice.
//
// Errors: core.ErrUnknownValve, ErrNegativeBudget, context errors.
func (sv *Solver) Duo(start string, budget1, budget2 int) (int, error) {
	return sv.DuoFrom(start, budget1, start, budget2)
}

// DuoFrom is Duo with a separate start valve per agent.
func (sv *Solver) DuoFrom(start1 string, budget1 int, start2 string, budget2 int) (int, error) {
	row1, err := sv.plan.row(start1)
	if err != nil {
		return 0, err
	}
	row2, err := sv.plan.row(start2)
	if err != nil {
		return 0, err
	}
	if budget1 < 0 || budget2 < 0 {
		return 0, fmt.Errorf("%w: %d, %d", ErrNegativeBudget, budget1, budget2)
	}

	return sv.run(modeDuo, []attribute.KeyValue{
		attribute.String("start1", start1),
		attribute.Int("budget1", budget1),
		attribute.String("start2", start2),
		attribute.Int("budget2", budget2),
	}, func(ctx context.Context, st *stats) (int, error) {
		if sv.opts.Workers > 1 {
			return duoParallel(ctx, sv.plan, sv.opts.Memo, sv.opts.Workers, st, row1, budget1, row2, budget2)
		}
		s := newSearcher(ctx, sv.plan, sv.opts.Memo)
		v := s.duo(row1, budget1, row2, budget2, 0)
		st.add(s)
		return v, s.err
	})
}

// run wraps one search in a span, metrics and a Debug record.
func (sv *Solver) run(mode string, attrs []attribute.KeyValue, fn func(context.Context, *stats) (int, error)) (int, error) {
	ctx, span := tracer.Start(sv.opts.Ctx, "search."+modeName(mode), trace.WithAttributes(attrs...))
	defer span.End()
	span.SetAttributes(attribute.Int("workers", sv.opts.Workers))

	if err := ctx.Err(); err != nil {
		searchTotal.WithLabelValues(mode, resultCanceled).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled before start")
		return 0, err
	}

	began := time.Now()
	var st stats
	best, err := fn(ctx, &st)
	elapsed := time.Since(began)

	searchDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	searchNodes.WithLabelValues(mode).Add(float64(st.nodes))
	searchMemoHits.WithLabelValues(mode).Add(float64(st.hits))
	span.SetAttributes(
		attribute.Int64("nodes", st.nodes),
		attribute.Int64("memo_hits", st.hits),
	)

	if err != nil {
		result := resultError
		if ctx.Err() != nil {
			result = resultCanceled
		}
		searchTotal.WithLabelValues(mode, result).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		sv.opts.Logger.Debug("search_aborted",
			slog.String("mode", mode),
			slog.Int64("nodes", st.nodes),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	searchTotal.WithLabelValues(mode, resultSuccess).Inc()
	span.SetAttributes(attribute.Int("best", best))
	span.SetStatus(codes.Ok, "")
	sv.opts.Logger.Debug("search_done",
		slog.String("mode", mode),
		slog.Int("best", best),
		slog.Int64("nodes", st.nodes),
		slog.Int64("memo_hits", st.hits),
		slog.Duration("elapsed", elapsed),
	)

	return best, nil
}

func modeName(mode string) string {
	if mode == modeDuo {
		return "Duo"
	}

	return "Solo"
}

// SolveSolo builds a Solver for n and runs a single Solo query.
func SolveSolo(n *core.Network, start string, budget int, opts ...Option) (int, error) {
	sv, err := NewSolver(n, opts...)
	if err != nil {
		return 0, err
	}

	return sv.Solo(start, budget)
}

// SolveDuo builds a Solver for n and runs a single Duo query.
func SolveDuo(n *core.Network, start string, budget1, budget2 int, opts ...Option) (int, error) {
	sv, err := NewSolver(n, opts...)
	if err != nil {
		return 0, err
	}

	return sv.Duo(start, budget1, budget2)
}
