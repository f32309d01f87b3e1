package rtc

import (
	"sync"
	"time"
)

type escalation struct {
	timer       *time.Timer
	scheduledAt time.Time
	generation  uint64
}

// EscalationTimers holds at most one pending quality escalation per consumer.
// A fired timer removes its own record before running.
type EscalationTimers struct {
	lock       sync.Mutex
	timers     map[string]*escalation
	generation uint64
}

func NewEscalationTimers() *EscalationTimers {
	return &EscalationTimers{
		timers: make(map[string]*escalation),
	}
}

// Schedule runs fn after delay unless canceled or superseded first.
// A previous timer for consumerID is stopped. A Cancel that returns false may have
// raced a firing fn, but fn has completed by then.
func (e *EscalationTimers) Schedule(consumerID string, delay time.Duration, fn func()) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if prev := e.timers[consumerID]; prev != nil {
		prev.timer.Stop()
	}

	e.generation++
	gen := e.generation
	esc := &escalation{
		scheduledAt: time.Now(),
		generation:  gen,
	}
	esc.timer = time.AfterFunc(delay, func() {
		e.fire(consumerID, gen, fn)
	})
	e.timers[consumerID] = esc
}

// fire clears the record of a current timer and runs fn with the timers locked.
// Cancel, Schedule and Stop wait for fn to return; fn must not call back into e.
func (e *EscalationTimers) fire(consumerID string, gen uint64, fn func()) {
	e.lock.Lock()
	defer e.lock.Unlock()

	esc := e.timers[consumerID]
	if esc == nil || esc.generation != gen {
		return
	}
	delete(e.timers, consumerID)
	fn()
}

// Cancel stops the pending timer of consumerID and reports whether one existed.
func (e *EscalationTimers) Cancel(consumerID string) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	esc := e.timers[consumerID]
	if esc == nil {
		return false
	}
	esc.timer.Stop()
	delete(e.timers, consumerID)
	return true
}

func (e *EscalationTimers) Pending(consumerID string) bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	_, ok := e.timers[consumerID]
	return ok
}

// ScheduledAt returns when the pending timer of consumerID was armed.
func (e *EscalationTimers) ScheduledAt(consumerID string) (time.Time, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if esc := e.timers[consumerID]; esc != nil {
		return esc.scheduledAt, true
	}
	return time.Time{}, false
}

func (e *EscalationTimers) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.timers)
}

// Stop cancels every pending timer.
func (e *EscalationTimers) Stop() {
	e.lock.Lock()
	defer e.lock.Unlock()
	for id, esc := range e.timers {
		esc.timer.Stop()
		delete(e.timers, id)
	}
}
