// Package cards holds the hover and click state of the site's interactive cards.
package cards

import (
	"fmt"
	"sync"
)

// State is a snapshot of a showcase card.
type State struct {
	Kind         Kind
	Hovered      bool
	Expanded     bool
	Interactions int
}

// Badge is the click counter text, empty before the first click.
func (s State) Badge() string {
	switch s.Interactions {
	case 0:
		return ""
	case 1:
		return "+1 click"
	}
	return fmt.Sprintf("+%d clicks", s.Interactions)
}

// Hint is the call to action under the description.
func (s State) Hint() string {
	if s.Expanded {
		return "Click to collapse"
	}
	return "Click to learn more"
}

// Card is an expandable showcase card.
type Card struct {
	onChange func(State)

	mu     sync.Mutex
	state  State
	closed bool
}

// New returns a collapsed card. onChange may be nil.
func New(kind Kind, onChange func(State)) *Card {
	return &Card{state: State{Kind: kind}, onChange: onChange}
}

func (c *Card) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Hover records pointer enter (true) or leave (false).
func (c *Card) Hover(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.Hovered == on {
		return
	}
	c.state.Hovered = on
	c.notify()
}

// Click toggles the disclosure and counts the interaction.
func (c *Card) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Expanded = !c.state.Expanded
	c.state.Interactions++
	c.notify()
}

// Close stops further updates.
func (c *Card) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Card) notify() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

// InfoState is a snapshot of a contact info card.
type InfoState struct {
	Kind    InfoKind
	Hovered bool
}

// InfoCard only tracks hover.
type InfoCard struct {
	onChange func(InfoState)

	mu     sync.Mutex
	state  InfoState
	closed bool
}

func NewInfo(kind InfoKind, onChange func(InfoState)) *InfoCard {
	return &InfoCard{state: InfoState{Kind: kind}, onChange: onChange}
}

func (c *InfoCard) Snapshot() InfoState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *InfoCard) Hover(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.Hovered == on {
		return
	}
	c.state.Hovered = on
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

func (c *InfoCard) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
