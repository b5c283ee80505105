// Package contact holds the contact page form controller.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

// Field identifies one of the form inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldProject
	FieldMessage
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldProject, FieldMessage}

var ErrUnknownField = errors.New("unknown form field")

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldProject:
		return "project"
	case FieldMessage:
		return "message"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps an input name to its Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Phase is the submission state of the form.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Submitted
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Message is the payload handed to a Submitter.
type Message struct {
	Name    string
	Email   string
	Project string
	Body    string
}

func (m Message) get(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldProject:
		return m.Project
	case FieldMessage:
		return m.Body
	}
	return ""
}

func (m *Message) set(f Field, v string) {
	switch f {
	case FieldName:
		m.Name = v
	case FieldEmail:
		m.Email = v
	case FieldProject:
		m.Project = v
	case FieldMessage:
		m.Body = v
	}
}

// State is a snapshot of the form.
type State struct {
	Message
	Phase    Phase
	Focused  Field
	HasFocus bool
	Err      string
}

// Valid reports whether name, email and message are filled in.
func (s State) Valid() bool {
	return s.Name != "" && s.Email != "" && s.Body != ""
}

func (s State) IsSubmitting() bool { return s.Phase == Submitting }
func (s State) IsSubmitted() bool  { return s.Phase == Submitted }

// Value returns the current text of f.
func (s State) Value(f Field) string {
	return s.Message.get(f)
}

// Filled reports whether f holds any text.
func (s State) Filled(f Field) bool {
	return s.Message.get(f) != ""
}

// IsFocused reports whether f currently has focus.
func (s State) IsFocused(f Field) bool {
	return s.HasFocus && s.Focused == f
}

// CanSubmit reports whether Submit would start a submission.
func (s State) CanSubmit() bool {
	if !s.Valid() {
		return false
	}
	return s.Phase == Idle || s.Phase == Failed
}

// ButtonLabel is the submit button text for the current phase.
func (s State) ButtonLabel() string {
	switch s.Phase {
	case Submitting:
		return "Sending Message..."
	case Submitted:
		return "Message Sent! Thank You!"
	case Failed:
		return "Try Again"
	}
	return "Send Message"
}

// Submitter delivers a completed form.
type Submitter interface {
	Submit(ctx context.Context, msg Message) error
}

// Options configures a Form.
type Options struct {
	Submitter Submitter
	Scheduler schedule.Scheduler
	// ResetDelay is how long the submitted state is held before the fields clear.
	ResetDelay time.Duration
	// OnChange is called with the form lock held after every state change.
	// It must not call back into the Form.
	OnChange func(State)
}

// Form is the contact form controller for one page instance.
type Form struct {
	submitter  Submitter
	scope      *schedule.Scope
	resetDelay time.Duration
	onChange   func(State)

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	epoch  uint64
	closed bool
}

// NewForm returns an empty form.
func NewForm(opts Options) *Form {
	ctx, cancel := context.WithCancel(context.Background())
	return &Form{
		submitter:  opts.Submitter,
		scope:      schedule.NewScope(opts.Scheduler),
		resetDelay: opts.ResetDelay,
		onChange:   opts.OnChange,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Snapshot returns the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Set replaces the text of one field.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state.Message.get(field) == value {
		return
	}
	f.state.Message.set(field, value)
	f.notify()
}

// Focus marks field as focused.
func (f *Form) Focus(field Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state.IsFocused(field) {
		return
	}
	f.state.Focused = field
	f.state.HasFocus = true
	f.notify()
}

// Blur clears the focused field.
func (f *Form) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.state.HasFocus {
		return
	}
	f.state.HasFocus = false
	f.notify()
}

// Submit starts delivering the form. It reports false and does nothing when the
// form is invalid or a submission is in flight or being acknowledged.
func (f *Form) Submit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.state.CanSubmit() {
		return false
	}
	f.epoch++
	epoch := f.epoch
	f.state.Phase = Submitting
	f.state.Err = ""
	msg := f.state.Message
	f.notify()

	go f.deliver(epoch, msg)
	return true
}

// Retry resubmits after a failure.
func (f *Form) Retry() bool {
	if f.Snapshot().Phase != Failed {
		return false
	}
	return f.Submit()
}

func (f *Form) deliver(epoch uint64, msg Message) {
	err := f.submitter.Submit(f.ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.epoch != epoch {
		return
	}
	if err != nil {
		log.Printf("contact: submission failed: %v", err)
		f.state.Phase = Failed
		f.state.Err = err.Error()
		f.notify()
		return
	}
	f.state.Phase = Submitted
	f.notify()
	f.scope.After(f.resetDelay, func() { f.clear(epoch) })
}

func (f *Form) clear(epoch uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.epoch != epoch || f.state.Phase != Submitted {
		return
	}
	f.state.Message = Message{}
	f.state.Phase = Idle
	f.notify()
}

// Close cancels any in-flight submission and pending reset. No state change or
// notification happens after Close returns.
func (f *Form) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.mu.Unlock()

	f.cancel()
	f.scope.Close()
}

func (f *Form) notify() {
	if f.onChange != nil {
		f.onChange(f.state)
	}
}
