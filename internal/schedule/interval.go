// Package schedule provides the timer primitive behind periodic side effects
// like playback position auto-save and study-time accrual. An Interval is an
// explicit start/stop task, so owners can tear it down when the session it
// serves ends instead of leaking a ticking goroutine.
package schedule

import (
	"sync"
	"time"
)

// Interval runs a function on a fixed period until stopped.
type Interval struct {
	every time.Duration
	fn    func()

	mu   sync.Mutex
	done chan struct{}
}

// NewInterval creates a stopped interval task.
func NewInterval(every time.Duration, fn func()) *Interval {
	return &Interval{every: every, fn: fn}
}

// Start begins ticking. Starting a running interval is a no-op.
func (i *Interval) Start() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.done != nil {
		return
	}
	done := make(chan struct{})
	i.done = done

	go func() {
		ticker := time.NewTicker(i.every)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				i.fn()
			}
		}
	}()
}

// Stop cancels the task. Stopping a stopped interval is a no-op.
func (i *Interval) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.done == nil {
		return
	}
	close(i.done)
	i.done = nil
}

// Running reports whether the task is ticking.
func (i *Interval) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.done != nil
}
