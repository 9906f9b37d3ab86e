// package clock provides cancellable scheduled tasks.
//
// The session controller never touches timers directly: it asks a [Scheduler] for one-shot
// or repeating callbacks and keeps the returned [Handle] to cancel them. Tests swap in a manual
// scheduler to step virtual time.
package clock

import (
	"sync"
	"time"
)

// Handle cancels a scheduled task.
type Handle interface {
	// Stop cancels the task. It is safe to call more than once.
	// Once Stop returns the callback will not run again, even if a firing was already queued.
	Stop()
}

// Scheduler schedules callbacks.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle // After runs fn once after d
	Every(d time.Duration, fn func()) Handle // Every runs fn every d until stopped
}

// Dispatch hands a callback to the goroutine that owns application state.
type Dispatch func(func())

// Real is a [Scheduler] backed by the runtime timers.
//
// Timer goroutines never run callbacks themselves; they pass them to the dispatch function so that
// state is only mutated from one event loop. With a nil dispatch callbacks run on the timer goroutine.
type Real struct {
	dispatch Dispatch
}

// NewReal creates a [Real] scheduler with the given dispatch function.
func NewReal(dispatch Dispatch) *Real {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Real{dispatch: dispatch}
}

// After implements [Scheduler].
func (r *Real) After(d time.Duration, fn func()) Handle {
	h := &handle{}
	t := time.AfterFunc(d, func() {
		r.dispatch(func() {
			if h.active() {
				h.finish()
				fn()
			}
		})
	})
	h.cancel = func() { t.Stop() }
	return h
}

// Every implements [Scheduler].
func (r *Real) Every(d time.Duration, fn func()) Handle {
	h := &handle{}
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.dispatch(func() {
					if h.active() {
						fn()
					}
				})
			}
		}
	}()

	h.cancel = func() {
		ticker.Stop()
		close(done)
	}
	return h
}

type handle struct {
	mu      sync.Mutex
	stopped bool
	cancel  func()
}

func (h *handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *handle) active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.stopped
}

// finish marks a one-shot handle as spent without cancelling anything.
func (h *handle) finish() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
}
