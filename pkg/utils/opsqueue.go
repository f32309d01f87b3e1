package utils

import (
	"sync"

	"github.com/roomcast/roomcast-server/pkg/logger"
)

// OpsQueue runs queued operations in order on a single goroutine. Operations
// enqueued before Start are buffered and run once the queue starts.
type OpsQueue struct {
	logger logger.Logger
	name   string
	size   int

	lock      sync.RWMutex
	ops       chan func()
	isStarted bool
	isStopped bool
}

func NewOpsQueue(logger logger.Logger, name string, size int) *OpsQueue {
	return &OpsQueue{
		logger: logger,
		name:   name,
		size:   size,
		ops:    make(chan func(), size),
	}
}

func (oq *OpsQueue) Start() {
	oq.lock.Lock()
	if oq.isStarted || oq.isStopped {
		oq.lock.Unlock()
		return
	}
	oq.isStarted = true
	oq.lock.Unlock()

	go oq.process()
}

func (oq *OpsQueue) Stop() {
	oq.lock.Lock()
	if oq.isStopped {
		oq.lock.Unlock()
		return
	}

	oq.isStopped = true
	close(oq.ops)
	oq.lock.Unlock()
}

// Enqueue reports false when the queue is stopped or full.
func (oq *OpsQueue) Enqueue(op func()) bool {
	oq.lock.RLock()
	defer oq.lock.RUnlock()
	if oq.isStopped {
		return false
	}

	select {
	case oq.ops <- op:
		return true
	default:
		oq.logger.Errorw("ops queue full", nil, "name", oq.name, "size", oq.size)
		return false
	}
}

func (oq *OpsQueue) process() {
	for op := range oq.ops {
		op()
	}
}
