package routing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roomcast/roomcast-server/pkg/routing"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/rtc/types/typesfakes"
)

func newWorkers(n int) []types.Worker {
	workers := make([]types.Worker, 0, n)
	for i := 0; i < n; i++ {
		w := &typesfakes.FakeWorker{}
		w.IndexReturns(i)
		w.PIDReturns(1000 + i)
		workers = append(workers, w)
	}
	return workers
}

func TestWorkerPool_Pick(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		_, err := routing.NewWorkerPool(nil)
		require.ErrorIs(t, err, routing.ErrNoWorkers)
	})

	t.Run("round robin", func(t *testing.T) {
		pool, err := routing.NewWorkerPool(newWorkers(3))
		require.NoError(t, err)

		var indexes []int
		for i := 0; i < 7; i++ {
			w, idx, err := pool.Pick()
			require.NoError(t, err)
			require.Equal(t, idx, w.Index())
			indexes = append(indexes, idx)
		}
		require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, indexes)
	})

	t.Run("every worker once per cycle under concurrency", func(t *testing.T) {
		const size = 4
		const rounds = 25
		pool, err := routing.NewWorkerPool(newWorkers(size))
		require.NoError(t, err)

		var mu sync.Mutex
		counts := make(map[int]int)
		var wg sync.WaitGroup
		for i := 0; i < size*rounds; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, idx, err := pool.Pick()
				if err != nil {
					idx = -1
				}
				mu.Lock()
				counts[idx]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		for i := 0; i < size; i++ {
			require.Equal(t, rounds, counts[i])
		}
	})

	t.Run("closed pool", func(t *testing.T) {
		workers := newWorkers(2)
		pool, err := routing.NewWorkerPool(workers)
		require.NoError(t, err)
		pool.Close()
		pool.Close()

		_, _, err = pool.Pick()
		require.ErrorIs(t, err, routing.ErrPoolClosed)
		for _, w := range workers {
			require.Equal(t, 1, w.(*typesfakes.FakeWorker).CloseCallCount())
		}
	})
}

func TestWorkerPool_Get(t *testing.T) {
	pool, err := routing.NewWorkerPool(newWorkers(2))
	require.NoError(t, err)

	w, ok := pool.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, w.Index())

	_, ok = pool.Get(2)
	require.False(t, ok)
	_, ok = pool.Get(-1)
	require.False(t, ok)
}

func TestWorkerPool_DuplicateIndex(t *testing.T) {
	workers := newWorkers(2)
	workers[1].(*typesfakes.FakeWorker).IndexReturns(0)
	_, err := routing.NewWorkerPool(workers)
	require.ErrorIs(t, err, routing.ErrDuplicateWorker)
}

func TestWorkerPool_OnWorkerDied(t *testing.T) {
	workers := newWorkers(2)
	pool, err := routing.NewWorkerPool(workers)
	require.NoError(t, err)

	var died []int
	pool.OnWorkerDied(func(w types.Worker, err error) {
		died = append(died, w.Index())
	})

	fake := workers[1].(*typesfakes.FakeWorker)
	require.Equal(t, 1, fake.OnDiedCallCount())
	fake.OnDiedArgsForCall(0)(errors.New("socket closed"))
	require.Equal(t, []int{1}, died)

	// deaths during shutdown are expected
	pool.Close()
	fake.OnDiedArgsForCall(0)(errors.New("socket closed"))
	require.Equal(t, []int{1}, died)
}

func TestPoolRouterFactory(t *testing.T) {
	workers := newWorkers(2)
	router := &typesfakes.FakeRouter{}
	router.IDReturns("RT_1")
	workers[0].(*typesfakes.FakeWorker).CreateRouterReturns(router, nil)
	workers[1].(*typesfakes.FakeWorker).CreateRouterReturns(nil, errors.New("worker busy"))

	pool, err := routing.NewWorkerPool(workers)
	require.NoError(t, err)
	factory := routing.NewPoolRouterFactory(pool)

	created, err := factory.CreateRouter(context.Background())
	require.NoError(t, err)
	require.Equal(t, router, created.Router)
	require.Equal(t, 0, created.WorkerIndex)
	require.Equal(t, 1000, created.WorkerPID)

	_, err = factory.CreateRouter(context.Background())
	require.Error(t, err)
}
