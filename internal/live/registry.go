package live

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/motionfolio/internal/config"
	"github.com/Zachkp/motionfolio/internal/contact"
	"github.com/Zachkp/motionfolio/internal/content"
	"github.com/Zachkp/motionfolio/internal/schedule"
)

var (
	ErrUnknownInstance = errors.New("unknown page instance")
	ErrAlreadyAttached = errors.New("page instance already attached")
	ErrClosed          = errors.New("registry closed")
	ErrTooManyPending  = errors.New("too many unattached page instances")
)

// DefaultMaxPending bounds unattached instances when Options.MaxPending is not set.
const DefaultMaxPending = 1024

// Renderer renders a named fragment template.
type Renderer interface {
	Fragment(name string, data any) (string, error)
}

// Options configures a Registry and the instances it mounts.
type Options struct {
	Renderer  Renderer
	Catalog   *content.Catalog
	Timing    config.Timing
	Scheduler schedule.Scheduler
	// Submitter delivers contact messages. Defaults to a simulated delivery
	// that succeeds after Timing.SubmitLatency.
	Submitter contact.Submitter
	// AttachGrace is how long a mounted instance waits for its connection.
	AttachGrace time.Duration
	// MaxPending is how many instances may wait for a connection at once.
	// Mount fails with ErrTooManyPending beyond it.
	MaxPending int
	// Rand feeds celebration marker placement. Defaults to math/rand/v2.
	Rand func() float64
	// NewID defaults to random UUIDs.
	NewID func() string
}

type entry struct {
	inst     *Instance
	reap     schedule.Task
	attached bool
}

// Registry owns every mounted instance.
type Registry struct {
	opts Options

	mu        sync.Mutex
	instances map[string]*entry
	pending   int
	closed    bool
}

func NewRegistry(opts Options) *Registry {
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.Real()
	}
	if opts.Submitter == nil {
		opts.Submitter = contact.Simulated{Scheduler: opts.Scheduler, Latency: opts.Timing.SubmitLatency}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.MaxPending <= 0 {
		opts.MaxPending = DefaultMaxPending
	}
	return &Registry{opts: opts, instances: make(map[string]*entry)}
}

// Mount creates an instance of page. It is discarded unless attached within
// the grace period.
func (r *Registry) Mount(page Page) (*Instance, error) {
	if page != PageHome && page != PageContact {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if r.pending >= r.opts.MaxPending {
		return nil, ErrTooManyPending
	}
	id := r.opts.NewID()
	inst := newInstance(id, page, r.opts)
	r.instances[id] = &entry{
		inst: inst,
		reap: r.opts.Scheduler.After(r.opts.AttachGrace, func() { r.reap(id) }),
	}
	r.pending++
	return inst, nil
}

// Attach claims the instance for a connection and starts its timers.
func (r *Registry) Attach(id string) (*Instance, error) {
	r.mu.Lock()
	e, ok := r.instances[id]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, id)
	}
	if e.attached {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyAttached, id)
	}
	e.attached = true
	r.pending--
	e.reap.Cancel()
	r.mu.Unlock()

	e.inst.start()
	return e.inst, nil
}

// Unmount removes and closes an instance. It reports whether id was mounted.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	e, ok := r.instances[id]
	if ok {
		delete(r.instances, id)
		if !e.attached {
			r.pending--
		}
		e.reap.Cancel()
	}
	r.mu.Unlock()

	if ok {
		e.inst.Close()
	}
	return ok
}

// Pending is the number of instances still waiting for a connection.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Len is the number of mounted instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Close unmounts everything and refuses further mounts.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	entries := r.instances
	r.instances = make(map[string]*entry)
	r.pending = 0
	r.mu.Unlock()

	for _, e := range entries {
		e.reap.Cancel()
		e.inst.Close()
	}
}

func (r *Registry) reap(id string) {
	r.mu.Lock()
	e, ok := r.instances[id]
	if !ok || e.attached {
		r.mu.Unlock()
		return
	}
	delete(r.instances, id)
	r.pending--
	r.mu.Unlock()

	log.Printf("live: reaped unattached %s instance %s", e.inst.page, id)
	e.inst.Close()
}
