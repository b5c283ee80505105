package live

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Zachkp/motionfolio/internal/cards"
	"github.com/Zachkp/motionfolio/internal/contact"
	"github.com/Zachkp/motionfolio/internal/content"
	"github.com/Zachkp/motionfolio/internal/demo"
	"github.com/Zachkp/motionfolio/internal/motion"
)

// Event types sent by the browser.
const (
	EventPointer     = "pointer"
	EventScroll      = "scroll"
	EventMeasure     = "measure"
	EventCardHover   = "card.hover"
	EventCardClick   = "card.click"
	EventInfoHover   = "info.hover"
	EventDemoPrimary = "demo.primary"
	EventDemoStart   = "demo.start"
	EventDemoReset   = "demo.reset"
	EventField       = "field"
	EventFocus       = "focus"
	EventBlur        = "blur"
	EventSubmit      = "submit"
	EventRetry       = "retry"
)

var ErrUnknownEvent = errors.New("unknown event")

// Event is one DOM event from the browser. Only the fields of its Type are set.
type Event struct {
	Type string `json:"type"`

	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	ScrollHeight   float64 `json:"scroll_height"`
	ViewportHeight float64 `json:"viewport_height"`

	Card string `json:"card"`
	Demo string `json:"demo"`
	On   bool   `json:"on"`

	Field string `json:"field"`
	Value string `json:"value"`
}

// Instance is the live state of one rendered page.
type Instance struct {
	id       string
	page     Page
	renderer Renderer
	catalog  *content.Catalog
	out      *outbox

	tracker *motion.Tracker
	// lastMotion is only touched from the tracker's change callback, which
	// runs under the tracker lock.
	lastMotion motion.State
	cards      map[cards.Kind]*cards.Card
	demos      map[demo.Kind]*demo.Demo

	form *contact.Form
	info map[cards.InfoKind]*cards.InfoCard

	closeOnce sync.Once
}

func newInstance(id string, page Page, opts Options) *Instance {
	in := &Instance{
		id:       id,
		page:     page,
		renderer: opts.Renderer,
		catalog:  opts.Catalog,
		out:      newOutbox(),
	}
	t := opts.Timing

	switch page {
	case PageHome:
		in.tracker = motion.NewTracker(motion.Options{
			Scheduler:      opts.Scheduler,
			TooltipDelay:   t.TooltipDelay,
			TooltipTimeout: t.TooltipTimeout,
			OnChange:       in.motionChanged,
		})
		in.cards = make(map[cards.Kind]*cards.Card, len(cards.Kinds))
		for _, k := range cards.Kinds {
			in.cards[k] = cards.New(k, func(s cards.State) {
				in.render(cardTarget(s.Kind), fragCard, s)
			})
		}
		in.demos = make(map[demo.Kind]*demo.Demo, len(demo.Kinds))
		for _, k := range demo.Kinds {
			in.demos[k] = demo.New(k, demo.Options{
				Scheduler: opts.Scheduler,
				Tick:      t.DemoTick,
				Step:      t.DemoStep,
				Markers:   t.Markers,
				Stagger:   t.MarkerStagger,
				Hold:      t.CelebrationHold,
				Rand:      opts.Rand,
				OnChange: func(s demo.State) {
					in.render(demoTarget(s.Kind), fragDemo, s)
				},
			})
		}

	case PageContact:
		in.form = contact.NewForm(contact.Options{
			Submitter:  opts.Submitter,
			Scheduler:  opts.Scheduler,
			ResetDelay: t.SubmittedHold,
			OnChange: func(s contact.State) {
				in.render(fragForm, fragForm, formView(s, in.catalog))
			},
		})
		in.info = make(map[cards.InfoKind]*cards.InfoCard, len(cards.InfoKinds))
		for _, k := range cards.InfoKinds {
			in.info[k] = cards.NewInfo(k, func(s cards.InfoState) {
				in.render(infoTarget(s.Kind), fragInfo, s)
			})
		}
	}
	return in
}

func (in *Instance) ID() string { return in.id }

func (in *Instance) Page() Page { return in.page }

// HomeView returns the current home page state. It is empty on other pages.
func (in *Instance) HomeView() HomeView {
	if in.tracker == nil {
		return HomeView{}
	}
	s := in.tracker.Snapshot()
	v := HomeView{Motion: s, Tooltip: tooltipView(s, in.catalog.Tooltip)}
	for _, k := range cards.Kinds {
		v.Cards = append(v.Cards, in.cards[k].Snapshot())
	}
	for _, k := range demo.Kinds {
		v.Demos = append(v.Demos, in.demos[k].Snapshot())
	}
	return v
}

// ContactView returns the current contact page state. It is empty on other pages.
func (in *Instance) ContactView() ContactView {
	if in.form == nil {
		return ContactView{}
	}
	v := ContactView{Form: formView(in.form.Snapshot(), in.catalog)}
	for _, k := range cards.InfoKinds {
		v.Info = append(v.Info, in.info[k].Snapshot())
	}
	return v
}

// View returns the state the page template renders.
func (in *Instance) View() any {
	if in.page == PageContact {
		return in.ContactView()
	}
	return in.HomeView()
}

// Dispatch applies one browser event.
func (in *Instance) Dispatch(ev Event) error {
	switch ev.Type {
	case EventPointer, EventScroll, EventMeasure:
		return in.dispatchMotion(ev)
	case EventCardHover, EventCardClick:
		return in.dispatchCard(ev)
	case EventInfoHover:
		return in.dispatchInfo(ev)
	case EventDemoPrimary, EventDemoStart, EventDemoReset:
		return in.dispatchDemo(ev)
	case EventField, EventFocus, EventBlur, EventSubmit, EventRetry:
		return in.dispatchForm(ev)
	}
	return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
}

func (in *Instance) dispatchMotion(ev Event) error {
	if in.tracker == nil {
		return in.unsupported(ev)
	}
	switch ev.Type {
	case EventPointer:
		in.tracker.Pointer(ev.X, ev.Y)
	case EventScroll:
		in.tracker.Scroll(ev.Y)
	case EventMeasure:
		in.tracker.Measure(ev.ScrollHeight, ev.ViewportHeight)
	}
	return nil
}

func (in *Instance) dispatchCard(ev Event) error {
	if in.cards == nil {
		return in.unsupported(ev)
	}
	kind, err := cards.ParseKind(ev.Card)
	if err != nil {
		return err
	}
	c := in.cards[kind]
	if ev.Type == EventCardHover {
		c.Hover(ev.On)
	} else {
		c.Click()
	}
	return nil
}

func (in *Instance) dispatchInfo(ev Event) error {
	if in.info == nil {
		return in.unsupported(ev)
	}
	kind, err := cards.ParseInfoKind(ev.Card)
	if err != nil {
		return err
	}
	in.info[kind].Hover(ev.On)
	return nil
}

func (in *Instance) dispatchDemo(ev Event) error {
	if in.demos == nil {
		return in.unsupported(ev)
	}
	kind, err := demo.ParseKind(ev.Demo)
	if err != nil {
		return err
	}
	d := in.demos[kind]
	switch ev.Type {
	case EventDemoPrimary:
		d.Primary()
	case EventDemoStart:
		d.Start()
	case EventDemoReset:
		d.Reset()
	}
	return nil
}

func (in *Instance) dispatchForm(ev Event) error {
	if in.form == nil {
		return in.unsupported(ev)
	}
	switch ev.Type {
	case EventField, EventFocus:
		field, err := contact.ParseField(ev.Field)
		if err != nil {
			return err
		}
		if ev.Type == EventField {
			in.form.Set(field, ev.Value)
		} else {
			in.form.Focus(field)
		}
	case EventBlur:
		in.form.Blur()
	case EventSubmit:
		in.form.Submit()
	case EventRetry:
		in.form.Retry()
	}
	return nil
}

func (in *Instance) unsupported(ev Event) error {
	return fmt.Errorf("%w: %q on %s page", ErrUnknownEvent, ev.Type, in.page)
}

// start begins the page's own timers. It runs once the browser attaches.
func (in *Instance) start() {
	if in.tracker != nil {
		in.tracker.Mount()
	}
}

// Close stops every component and drops undelivered patches.
func (in *Instance) Close() {
	in.closeOnce.Do(func() {
		if in.tracker != nil {
			in.tracker.Close()
		}
		for _, c := range in.cards {
			c.Close()
		}
		for _, d := range in.demos {
			d.Close()
		}
		if in.form != nil {
			in.form.Close()
		}
		for _, c := range in.info {
			c.Close()
		}
		in.out.close()
	})
}

func (in *Instance) motionChanged(s motion.State) {
	prev := in.lastMotion
	in.lastMotion = s
	if s.ScrollProgress() != prev.ScrollProgress() {
		in.render(fragScrollProgress, fragScrollProgress, s)
	}
	if s.Orbs() != prev.Orbs() {
		in.render(fragOrbs, fragOrbs, s)
	}
	if s.TooltipVisible != prev.TooltipVisible {
		in.render(fragTooltip, fragTooltip, tooltipView(s, in.catalog.Tooltip))
	}
}

func (in *Instance) render(target, name string, data any) {
	html, err := in.renderer.Fragment(name, data)
	if err != nil {
		log.Printf("live: instance %s: %v", in.id, err)
		return
	}
	in.out.push(target, html)
}
