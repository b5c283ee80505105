package live

import "sync"

// Patch replaces the element with id Target by HTML.
type Patch struct {
	Target string `json:"target"`
	HTML   string `json:"html"`
}

// outbox coalesces patches per target until the writer drains them, so a slow
// connection only ever receives the latest fragment of each element.
type outbox struct {
	mu      sync.Mutex
	pending map[string]string
	order   []string
	closed  bool

	ready chan struct{}
	done  chan struct{}
}

func newOutbox() *outbox {
	return &outbox{
		pending: make(map[string]string),
		ready:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (o *outbox) push(target, html string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	if _, ok := o.pending[target]; !ok {
		o.order = append(o.order, target)
	}
	o.pending[target] = html

	select {
	case o.ready <- struct{}{}:
	default:
	}
}

// drain returns the pending patches in first-queued order.
func (o *outbox) drain() []Patch {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.order) == 0 {
		return nil
	}
	patches := make([]Patch, 0, len(o.order))
	for _, target := range o.order {
		patches = append(patches, Patch{Target: target, HTML: o.pending[target]})
	}
	clear(o.pending)
	o.order = o.order[:0]
	return patches
}

func (o *outbox) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	clear(o.pending)
	o.order = nil
	close(o.done)
}
