package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and caches", func(t *testing.T) {
		memo := New[int]()
		var calls atomic.Int32

		v, err := memo.GetOrCompute(ctx, "k", func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = memo.GetOrCompute(ctx, "k", func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("should not run")
		})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("failed computation is cached too", func(t *testing.T) {
		memo := New[int]()
		var calls atomic.Int32
		fail := errors.New("store down")

		_, err := memo.GetOrCompute(ctx, "k", func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 0, fail
		})
		assert.ErrorIs(t, err, fail)

		_, err = memo.GetOrCompute(ctx, "k", func(ctx context.Context) (int, error) {
			calls.Add(1)
			return 7, nil
		})
		assert.ErrorIs(t, err, fail)
		assert.Equal(t, int32(1), calls.Load(), "failing store must not be hammered within the TTL")
	})

	t.Run("keys are independent", func(t *testing.T) {
		memo := New[string]()

		a, err := memo.GetOrCompute(ctx, "a", func(ctx context.Context) (string, error) { return "alpha", nil })
		require.NoError(t, err)
		b, err := memo.GetOrCompute(ctx, "b", func(ctx context.Context) (string, error) { return "beta", nil })
		require.NoError(t, err)

		assert.Equal(t, "alpha", a)
		assert.Equal(t, "beta", b)
		assert.Equal(t, 2, memo.Len())
	})

	t.Run("caller cancellation does not abort the computation", func(t *testing.T) {
		memo := New[int]()
		var calls atomic.Int32

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		v, err := memo.GetOrCompute(cancelled, "k", func(ctx context.Context) (int, error) {
			calls.Add(1)
			// The compute context must survive the caller's cancellation.
			require.NoError(t, ctx.Err())
			return 99, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 99, v)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestGetOrComputeSingleFlight(t *testing.T) {
	memo := New[int]()
	var calls atomic.Int32

	const waiters = 16
	gate := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, waiters)
	errs := make([]error, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			results[i], errs[i] = memo.GetOrCompute(context.Background(), "chart", func(ctx context.Context) (int, error) {
				calls.Add(1)
				<-gate
				return 1234, nil
			})
		}()
	}

	// Let all goroutines pile up on the same key before the computation
	// is allowed to finish.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "exactly one computation per key")
	for i := 0; i < waiters; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 1234, results[i])
	}
}

func TestGetOrComputeExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	memo := New[int](WithTTL(24*time.Hour), WithClock(clock))
	ctx := context.Background()
	var calls atomic.Int32
	fetch := func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}

	v, err := memo.GetOrCompute(ctx, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Still fresh just before the TTL boundary.
	advance(24*time.Hour - time.Second)
	v, err = memo.GetOrCompute(ctx, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Expired entries are treated as absent and recomputed on access.
	advance(2 * time.Second)
	v, err = memo.GetOrCompute(ctx, "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewDefaults(t *testing.T) {
	memo := New[int](WithTTL(-time.Hour))
	assert.Equal(t, DefaultTTL, memo.ttl)

	memo = New[int]()
	assert.Equal(t, DefaultTTL, memo.ttl)
	assert.Equal(t, 0, memo.Len())
}
