// Package schedule provides cancellable delayed and periodic tasks.
//
// Every timer a page component owns goes through a Scheduler so the component can
// cancel it on reset or unmount. A cancelled task never runs its callback again,
// but a callback that was already dispatched when Cancel was called may still be
// running; components guard against that with their own epoch check.
package schedule

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel stops the task. It reports whether the task was still pending.
	Cancel() bool
}

// Scheduler schedules callbacks.
type Scheduler interface {
	// After runs fn once after d.
	After(d time.Duration, fn func()) Task
	// Every runs fn every d until the task is cancelled.
	Every(d time.Duration, fn func()) Task
}

// Real returns a Scheduler backed by the runtime timers.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

type realTask struct {
	mu    sync.Mutex
	done  bool
	timer *time.Timer
	stop  chan struct{}
}

func (realScheduler) After(d time.Duration, fn func()) Task {
	t := &realTask{}
	t.mu.Lock()
	t.timer = time.AfterFunc(d, func() {
		if t.finish() {
			fn()
		}
	})
	t.mu.Unlock()
	return t
}

func (realScheduler) Every(d time.Duration, fn func()) Task {
	t := &realTask{stop: make(chan struct{})}
	if d <= 0 {
		t.done = true
		return t
	}
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				if !t.pending() {
					return
				}
				fn()
			}
		}
	}()
	return t
}

func (t *realTask) finish() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (t *realTask) pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.done
}

func (t *realTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.stop != nil {
		close(t.stop)
	}
	return true
}

// inert is returned for tasks that were never scheduled.
type inert struct{}

func (inert) Cancel() bool { return false }
