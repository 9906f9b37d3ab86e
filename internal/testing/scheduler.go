// package testing contains shared testing utilities
package testing

import (
	"time"

	"github.com/desertthunder/tunedeck/internal/clock"
)

var _ clock.Scheduler = (*ManualScheduler)(nil)

// ManualScheduler is a [clock.Scheduler] driven by [ManualScheduler.Advance] instead of wall time.
//
// Callbacks run synchronously on the caller's goroutine, in due-time order.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at      time.Duration
	every   time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() { t.stopped = true }

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After implements [clock.Scheduler].
func (m *ManualScheduler) After(d time.Duration, fn func()) clock.Handle {
	return m.add(d, 0, fn)
}

// Every implements [clock.Scheduler].
func (m *ManualScheduler) Every(d time.Duration, fn func()) clock.Handle {
	if d <= 0 {
		d = time.Nanosecond
	}
	return m.add(d, d, fn)
}

func (m *ManualScheduler) add(d, every time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{at: m.now + d, every: every, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves virtual time forward by d, firing every task that comes due along the way.
// Tasks scheduled by callbacks fire too if they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		if next.every > 0 {
			next.at += next.every
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = target
	m.compact()
}

// Now returns the elapsed virtual time.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Pending returns the number of tasks that have not fired or been stopped, repeating tasks included.
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Repeating returns the number of live repeating tasks.
func (m *ManualScheduler) Repeating() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped && t.every > 0 {
			n++
		}
	}
	return n
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.stopped || t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *ManualScheduler) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
}
