package engine

import (
	"sync"

	"github.com/frostbyte73/core"
)

// closer tracks the closed state of an engine object and its close observers.
// Observers registered after close run immediately.
type closer struct {
	lock      sync.Mutex
	fuse      core.Fuse
	observers []func()
}

func newCloser() closer {
	return closer{fuse: core.NewFuse()}
}

func (c *closer) OnClose(f func()) {
	c.lock.Lock()
	if c.fuse.IsBroken() {
		c.lock.Unlock()
		f()
		return
	}
	c.observers = append(c.observers, f)
	c.lock.Unlock()
}

func (c *closer) Closed() bool {
	return c.fuse.IsBroken()
}

func (c *closer) Done() <-chan struct{} {
	return c.fuse.Watch()
}

// close marks the object closed, runs teardown and then the observers.
// Only the first call does anything.
func (c *closer) close(teardown func()) bool {
	c.lock.Lock()
	if c.fuse.IsBroken() {
		c.lock.Unlock()
		return false
	}
	c.fuse.Break()
	observers := c.observers
	c.observers = nil
	c.lock.Unlock()

	if teardown != nil {
		teardown()
	}
	for _, f := range observers {
		f()
	}
	return true
}
