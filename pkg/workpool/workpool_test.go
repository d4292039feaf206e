package workpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllSucceed(t *testing.T) {
	pool := New(4)

	var counter int64
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = func(ctx context.Context) error {
			atomic.AddInt64(&counter, 1)
			return nil
		}
	}

	errs := pool.Run(context.Background(), jobs)
	require.Len(t, errs, 20)
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(20), counter)
}

func TestRun_PreservesErrorOrder(t *testing.T) {
	pool := New(2)
	boom := errors.New("boom")

	jobs := []Job{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error { return nil },
	}

	errs := pool.Run(context.Background(), jobs)
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
}

func TestRun_CancelledContext(t *testing.T) {
	pool := New(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{
		func(ctx context.Context) error { return nil },
	}

	errs := pool.Run(ctx, jobs)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestRun_EmptyJobs(t *testing.T) {
	pool := New(4)
	errs := pool.Run(context.Background(), nil)
	assert.Empty(t, errs)
}

func TestNew_DefaultSize(t *testing.T) {
	pool := New(0)
	assert.Greater(t, pool.Size(), 0)
}
