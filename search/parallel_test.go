package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/search"
)

// TestParallelMatchesSequential fans out over several worker counts and
// expects the sequential answer every time.
func TestParallelMatchesSequential(t *testing.T) {
	for seed := int64(10); seed < 14; seed++ {
		net := randomNetwork(t, seed, 10)
		seq, err := search.NewSolver(net, search.WithLogger(quietLogger()))
		require.NoError(t, err)

		wantSolo, err := seq.Solo("AA", 18)
		require.NoError(t, err)
		wantDuo, err := seq.Duo("AA", 14, 14)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 16} {
			par, err := search.NewSolver(net, search.WithWorkers(workers), search.WithLogger(quietLogger()))
			require.NoError(t, err)

			got, err := par.Solo("AA", 18)
			require.NoError(t, err)
			require.Equal(t, wantSolo, got, "seed %d workers %d solo", seed, workers)

			got, err = par.Duo("AA", 14, 14)
			require.NoError(t, err)
			require.Equal(t, wantDuo, got, "seed %d workers %d duo", seed, workers)
		}
	}
}

func TestParallelSample(t *testing.T) {
	sv := sampleSolver(t, search.WithWorkers(4))

	solo, err := sv.Solo("AA", 30)
	require.NoError(t, err)
	require.Equal(t, 1651, solo)

	duo, err := sv.Duo("AA", 26, 26)
	require.NoError(t, err)
	require.Equal(t, 1707, duo)

	zero, err := sv.Duo("AA", 0, 0)
	require.NoError(t, err)
	require.Zero(t, zero)
}

// TestParallelConcurrentCalls shares one Solver between goroutines.
func TestParallelConcurrentCalls(t *testing.T) {
	sv := sampleSolver(t, search.WithWorkers(2))

	errs := make(chan error, 8)
	vals := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func() {
			v, err := sv.Duo(builder.SampleStart, 26, 26)
			vals <- v
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errs)
		require.Equal(t, 1707, <-vals)
	}
}

func TestParallelCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sv := sampleSolver(t, search.WithContext(ctx), search.WithWorkers(3))
	cancel()

	_, err := sv.Duo("AA", 26, 26)
	require.ErrorIs(t, err, context.Canceled)
}
