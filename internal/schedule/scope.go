package schedule

import (
	"sync"
	"time"
)

// Scope groups the tasks of one owner so they can be cancelled together.
// After Close, scheduling through the scope returns tasks that never run.
type Scope struct {
	sched Scheduler

	mu     sync.Mutex
	tasks  map[*scopedTask]struct{}
	closed bool
}

type scopedTask struct {
	scope *Scope
	inner Task
}

// NewScope returns a Scope scheduling on s.
func NewScope(s Scheduler) *Scope {
	return &Scope{sched: s, tasks: make(map[*scopedTask]struct{})}
}

func (s *Scope) After(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return inert{}
	}
	st := &scopedTask{scope: s}
	s.tasks[st] = struct{}{}
	st.inner = s.sched.After(d, func() {
		if s.forget(st) {
			fn()
		}
	})
	return st
}

func (s *Scope) Every(d time.Duration, fn func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return inert{}
	}
	st := &scopedTask{scope: s}
	s.tasks[st] = struct{}{}
	st.inner = s.sched.Every(d, func() {
		if s.live(st) {
			fn()
		}
	})
	return st
}

// Active returns the number of tasks in the scope still pending.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close cancels every pending task. It is safe to call more than once.
func (s *Scope) Close() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = make(map[*scopedTask]struct{})
	s.closed = true
	s.mu.Unlock()

	for st := range tasks {
		st.cancelInner()
	}
}

func (s *Scope) forget(st *scopedTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[st]; !ok {
		return false
	}
	delete(s.tasks, st)
	return true
}

func (s *Scope) live(st *scopedTask) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[st]
	return ok
}

func (st *scopedTask) Cancel() bool {
	if !st.scope.forget(st) {
		return false
	}
	st.cancelInner()
	return true
}

func (st *scopedTask) cancelInner() {
	st.scope.mu.Lock()
	inner := st.inner
	st.scope.mu.Unlock()
	if inner != nil {
		inner.Cancel()
	}
}
