// Package demo implements the home page progress and celebration demo.
//
// A run ticks progress up by a fixed step until it reaches exactly 100, then
// spawns a burst of celebration markers that clear themselves after a hold
// period. Each Demo owns at most one tick at a time.
package demo

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

// Max is the progress value of a finished run.
const Max = 100

// DefaultTick is used when Options.Tick is not positive.
const DefaultTick = 30 * time.Millisecond

// Phase is the run state of a demo.
type Phase int

const (
	Idle Phase = iota
	Running
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Marker is one celebration sparkle. X and Y are percentages of the card.
type Marker struct {
	ID    int
	X     float64
	Y     float64
	Delay time.Duration
}

// State is a snapshot of a demo.
type State struct {
	Kind        Kind
	Phase       Phase
	Progress    int
	Celebrating bool
	Markers     []Marker
}

// Label is the in-progress button text.
func (s State) Label() string {
	switch {
	case s.Progress < 50:
		return "Processing"
	case s.Progress < 80:
		return "Almost there"
	}
	return "Finishing"
}

func (s State) IsRunning() bool   { return s.Phase == Running }
func (s State) IsCompleted() bool { return s.Phase == Completed }

// Busy reports whether the primary button is disabled.
func (s State) Busy() bool {
	return s.Phase == Running
}

// Options configures a Demo.
type Options struct {
	Scheduler schedule.Scheduler
	// Tick is the interval between progress steps.
	Tick time.Duration
	// Step is added to progress on every tick.
	Step int
	// Markers is the number of celebration markers spawned on completion.
	Markers int
	// Stagger offsets each marker's reveal by its index.
	Stagger time.Duration
	// Hold is how long markers stay before clearing.
	Hold time.Duration
	// Rand returns values in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
	// OnChange is called with the demo lock held after every state change.
	OnChange func(State)
}

// Demo is one interactive demo card.
type Demo struct {
	opts  Options
	scope *schedule.Scope

	mu     sync.Mutex
	state  State
	tick   schedule.Task
	clear  schedule.Task
	epoch  uint64
	closed bool
}

// New returns an idle demo of the given kind.
func New(kind Kind, opts Options) *Demo {
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	return &Demo{
		opts:  opts,
		scope: schedule.NewScope(opts.Scheduler),
		state: State{Kind: kind},
	}
}

// Snapshot returns a copy of the current state.
func (d *Demo) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot()
}

func (d *Demo) snapshot() State {
	s := d.state
	s.Markers = append([]Marker(nil), d.state.Markers...)
	return s
}

// Start begins a run from idle. It reports false when the demo is running,
// completed or closed.
func (d *Demo) Start() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.state.Phase != Idle {
		return false
	}
	d.epoch++
	epoch := d.epoch
	d.state.Phase = Running
	d.state.Progress = 0
	d.tick = d.scope.Every(d.opts.Tick, func() { d.advance(epoch) })
	d.notify()
	return true
}

// Reset returns the demo to idle, dropping any tick or celebration.
// It reports false when the demo was already idle.
func (d *Demo) Reset() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.state.Phase == Idle {
		return false
	}
	d.epoch++
	d.stopTimers()
	d.state = State{Kind: d.state.Kind}
	d.notify()
	return true
}

// Primary handles the demo's single button: start from idle, reset from
// completed, nothing while running.
func (d *Demo) Primary() bool {
	switch d.Snapshot().Phase {
	case Idle:
		return d.Start()
	case Completed:
		return d.Reset()
	}
	return false
}

// Close cancels every timer the demo owns.
func (d *Demo) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.epoch++
	d.stopTimers()
	d.mu.Unlock()

	d.scope.Close()
}

func (d *Demo) advance(epoch uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.epoch != epoch || d.state.Phase != Running {
		return
	}
	next := d.state.Progress + d.opts.Step
	if next < Max {
		d.state.Progress = next
		d.notify()
		return
	}

	d.state.Progress = Max
	if d.tick != nil {
		d.tick.Cancel()
		d.tick = nil
	}
	d.state.Phase = Completed
	d.celebrate(epoch)
	d.notify()
}

func (d *Demo) celebrate(epoch uint64) {
	markers := make([]Marker, d.opts.Markers)
	for i := range markers {
		markers[i] = Marker{
			ID:    i,
			X:     d.opts.Rand() * 100,
			Y:     d.opts.Rand() * 100,
			Delay: time.Duration(i) * d.opts.Stagger,
		}
	}
	d.state.Celebrating = true
	d.state.Markers = markers
	d.clear = d.scope.After(d.opts.Hold, func() { d.endCelebration(epoch) })
}

func (d *Demo) endCelebration(epoch uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.epoch != epoch || !d.state.Celebrating {
		return
	}
	d.clear = nil
	d.state.Celebrating = false
	d.state.Markers = nil
	d.notify()
}

func (d *Demo) stopTimers() {
	if d.tick != nil {
		d.tick.Cancel()
		d.tick = nil
	}
	if d.clear != nil {
		d.clear.Cancel()
		d.clear = nil
	}
}

func (d *Demo) notify() {
	if d.opts.OnChange != nil {
		d.opts.OnChange(d.snapshot())
	}
}
