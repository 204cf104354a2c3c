package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for search construction and dispatch.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("search: network is nil")

	// ErrTooManyValves is returned when more positive-rate valves exist than
	// fit in the 64-bit exclusivity set.
	ErrTooManyValves = errors.New("search: too many positive-rate valves")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("search: negative time budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// MaxPositiveValves is the largest number of positive-rate valves a Solver accepts.
const MaxPositiveValves = 64

// Option configures a Solver via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds Solver parameters.
type Options struct {
	// Ctx cancels index construction and every search run by the Solver.
	Ctx context.Context

	// Workers is the number of goroutines used for top-level branches.
	// 1 runs the whole search on the calling goroutine.
	Workers int

	// Memo enables result caching inside a search call.
	Memo bool

	// Logger receives Debug-level progress records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - one worker (sequential)
//   - memoization on
//   - slog.Default() as logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Memo:    true,
		Logger:  slog.Default(),
	}
}

// WithContext sets the context used for cancellation and tracing.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets how many top-level branches may run concurrently.
//
//	n ≥ 1: at most n goroutines
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMemo toggles memoization. Results never depend on it.
func WithMemo(enabled bool) Option {
	return func(o *Options) { o.Memo = enabled }
}

// WithLogger sets the logger for Debug progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
