package routing

import "errors"

var (
	ErrNoWorkers       = errors.New("worker pool is empty")
	ErrWorkerNotFound  = errors.New("could not find worker")
	ErrPoolClosed      = errors.New("worker pool closed")
	ErrDuplicateWorker = errors.New("worker index already in pool")
	ErrIPNotSet        = errors.New("ip address is required")
)
