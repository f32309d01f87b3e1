package routing

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

// WorkerPool hands out media workers in round-robin order.
type WorkerPool struct {
	workers []types.Worker
	cursor  atomic.Uint64
	closed  atomic.Bool

	lock   sync.RWMutex
	onDied []func(w types.Worker, err error)
}

func NewWorkerPool(workers []types.Worker) (*WorkerPool, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	seen := make(map[int]bool, len(workers))
	for _, w := range workers {
		if seen[w.Index()] {
			return nil, ErrDuplicateWorker
		}
		seen[w.Index()] = true
	}

	p := &WorkerPool{
		workers: workers,
	}
	for _, w := range workers {
		worker := w
		worker.OnDied(func(err error) {
			p.handleWorkerDied(worker, err)
		})
	}
	return p, nil
}

// Pick returns the next worker in rotation together with its position in the pool.
// Over N consecutive calls every worker is returned exactly once.
func (p *WorkerPool) Pick() (types.Worker, int, error) {
	if p.closed.Load() {
		return nil, 0, ErrPoolClosed
	}
	n := uint64(len(p.workers))
	if n == 0 {
		return nil, 0, ErrNoWorkers
	}
	idx := int((p.cursor.Inc() - 1) % n)
	return p.workers[idx], idx, nil
}

func (p *WorkerPool) Get(index int) (types.Worker, bool) {
	if index < 0 || index >= len(p.workers) {
		return nil, false
	}
	return p.workers[index], true
}

func (p *WorkerPool) Workers() []types.Worker {
	return append([]types.Worker(nil), p.workers...)
}

func (p *WorkerPool) Size() int {
	return len(p.workers)
}

// OnWorkerDied registers a callback for the unexpected death of any worker.
func (p *WorkerPool) OnWorkerDied(f func(w types.Worker, err error)) {
	p.lock.Lock()
	p.onDied = append(p.onDied, f)
	p.lock.Unlock()
}

func (p *WorkerPool) handleWorkerDied(w types.Worker, err error) {
	if p.closed.Load() {
		return
	}
	logger.Errorw("media worker died", err, "workerIndex", w.Index(), "workerPID", w.PID())

	p.lock.RLock()
	handlers := append([]func(types.Worker, error){}, p.onDied...)
	p.lock.RUnlock()
	for _, f := range handlers {
		f(w, err)
	}
}

func (p *WorkerPool) Close() {
	if p.closed.Swap(true) {
		return
	}
	for _, w := range p.workers {
		w.Close()
	}
}

// PoolRouterFactory creates routers on workers picked from a WorkerPool.
type PoolRouterFactory struct {
	pool *WorkerPool
}

func NewPoolRouterFactory(pool *WorkerPool) *PoolRouterFactory {
	return &PoolRouterFactory{pool: pool}
}

func (f *PoolRouterFactory) CreateRouter(ctx context.Context) (types.CreatedRouter, error) {
	w, idx, err := f.pool.Pick()
	if err != nil {
		return types.CreatedRouter{}, err
	}
	router, err := w.CreateRouter(ctx)
	if err != nil {
		return types.CreatedRouter{}, errors.Wrapf(err, "create router on worker %d", idx)
	}
	return types.CreatedRouter{
		Router:      router,
		WorkerIndex: idx,
		WorkerPID:   w.PID(),
	}, nil
}
