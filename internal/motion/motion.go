// Package motion tracks the pointer and scroll position that drive the home
// page background, and the onboarding tooltip that invites the first move.
package motion

import (
	"math"
	"sync"
	"time"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

// State is a snapshot of the tracker.
type State struct {
	PointerX       float64
	PointerY       float64
	ScrollY        float64
	ScrollHeight   float64
	ViewportHeight float64
	Interacted     bool
	TooltipVisible bool
}

// ScrollProgress is the scrolled share of the page in [0, 100]. It stays at 0
// until the page has been measured or when the page does not scroll.
func (s State) ScrollProgress() float64 {
	span := s.ScrollHeight - s.ViewportHeight
	if span <= 0 || s.ScrollY <= 0 {
		return 0
	}
	return math.Min(s.ScrollY/span*100, 100)
}

// Orb is the placement of one background blob. Only the fields relevant to
// the orb's anchor are set; offsets are in pixels.
type Orb struct {
	Left, Top, Right, Bottom float64
	TranslateX, TranslateY   float64
	Scale                    float64
}

// Orbs returns the three background blobs for s.
func (s State) Orbs() [3]Orb {
	x, y, sy := s.PointerX, s.PointerY, s.ScrollY
	grow := func(scale float64) float64 {
		if s.Interacted {
			return scale
		}
		return 1
	}
	return [3]Orb{
		{Left: x*0.02 - sy*0.1, Top: y*0.02 - sy*0.05, Scale: grow(1.2)},
		{Right: x*0.01 + sy*0.05, Bottom: y*0.01 + sy*0.03, Scale: grow(1.1)},
		{TranslateX: x * 0.005, TranslateY: y * 0.005, Scale: grow(1.3)},
	}
}

// Options configures a Tracker.
type Options struct {
	Scheduler schedule.Scheduler
	// TooltipDelay is how long after mount the tooltip appears if the visitor
	// has not moved the pointer yet.
	TooltipDelay time.Duration
	// TooltipTimeout is when the tooltip is hidden regardless.
	TooltipTimeout time.Duration
	// OnChange is called with the tracker lock held after every state change.
	OnChange func(State)
}

// Tracker holds the pointer, scroll and tooltip state of one home page view.
type Tracker struct {
	opts  Options
	scope *schedule.Scope

	mu      sync.Mutex
	state   State
	show    schedule.Task
	mounted bool
	closed  bool
}

func NewTracker(opts Options) *Tracker {
	return &Tracker{opts: opts, scope: schedule.NewScope(opts.Scheduler)}
}

func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Mount starts the tooltip timers. Only the first call has an effect.
func (t *Tracker) Mount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.mounted {
		return
	}
	t.mounted = true
	t.show = t.scope.After(t.opts.TooltipDelay, t.showTooltip)
	t.scope.After(t.opts.TooltipTimeout, t.hideTooltip)
}

func (t *Tracker) showTooltip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.show = nil
	if t.closed || t.state.Interacted || t.state.TooltipVisible {
		return
	}
	t.state.TooltipVisible = true
	t.notify()
}

func (t *Tracker) hideTooltip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || !t.state.TooltipVisible {
		return
	}
	t.state.TooltipVisible = false
	t.notify()
}

// Pointer records a pointer move. The first move marks the visitor as having
// interacted and dismisses the tooltip.
func (t *Tracker) Pointer(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.state.PointerX, t.state.PointerY = x, y
	if !t.state.Interacted {
		t.state.Interacted = true
		t.state.TooltipVisible = false
		if t.show != nil {
			t.show.Cancel()
			t.show = nil
		}
	}
	t.notify()
}

// Scroll records the page's vertical scroll offset.
func (t *Tracker) Scroll(y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.state.ScrollY == y {
		return
	}
	t.state.ScrollY = y
	t.notify()
}

// Measure records the document and viewport heights used for scroll progress.
func (t *Tracker) Measure(scrollHeight, viewportHeight float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || (t.state.ScrollHeight == scrollHeight && t.state.ViewportHeight == viewportHeight) {
		return
	}
	t.state.ScrollHeight = scrollHeight
	t.state.ViewportHeight = viewportHeight
	t.notify()
}

// Close cancels the tooltip timers and stops further updates.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.show = nil
	t.mu.Unlock()

	t.scope.Close()
}

func (t *Tracker) notify() {
	if t.opts.OnChange != nil {
		t.opts.OnChange(t.state)
	}
}
