package bench

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithMockClock(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	results, err := Run(context.Background(), clock, Config{Seed: 1, Bytes: 64, Rounds: 10})
	require.NoError(t, err)
	require.Len(t, results, 4)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
		assert.Equal(t, int64(640), r.Bytes)
		// The mock clock never moves on its own.
		assert.Zero(t, r.Elapsed)
		assert.Zero(t, r.BytesPerSecond())
	}
	assert.Equal(t, []string{"original", "original+forward", "current", "current+backward"}, names)
}

func TestRunWithRealClock(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), quartz.NewReal(), Config{Seed: 2, Bytes: 4096, Rounds: 64})
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}
}

func TestBytesPerSecond(t *testing.T) {
	t.Parallel()

	r := Result{Bytes: 1000, Elapsed: 500 * time.Millisecond}
	assert.InDelta(t, 2000.0, r.BytesPerSecond(), 1e-9)
}

func TestRunValidatesAndCancels(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), quartz.NewReal(), Config{Bytes: 0, Rounds: 1})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, quartz.NewReal(), Config{Bytes: 8, Rounds: 8})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
