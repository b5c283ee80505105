package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance instead of wall time.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m         *Manual
	due       time.Duration
	every     time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that have not fired or been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) After(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		return inert{}
	}
	return m.add(d, d, fn)
}

func (m *Manual) add(d, every time.Duration, fn func()) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{m: m, due: m.now + d, every: every, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves time forward by d, firing due tasks in deadline order.
// Tasks scheduled by a callback fire within the same call if they fall due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			m.remove(next)
		}
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) remove(t *manualTask) {
	for i, other := range m.tasks {
		if other == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.cancelled {
		return false
	}
	for _, other := range t.m.tasks {
		if other == t {
			t.cancelled = true
			t.m.remove(t)
			return true
		}
	}
	return false
}
