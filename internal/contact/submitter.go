package contact

import (
	"context"
	"time"

	"github.com/Zachkp/motionfolio/internal/schedule"
)

// Simulated is a Submitter that always succeeds after Latency.
// Nothing is delivered anywhere.
type Simulated struct {
	Scheduler schedule.Scheduler
	Latency   time.Duration
}

func (s Simulated) Submit(ctx context.Context, _ Message) error {
	done := make(chan struct{})
	task := s.Scheduler.After(s.Latency, func() { close(done) })
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		task.Cancel()
		return ctx.Err()
	}
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, msg Message) error

func (f SubmitterFunc) Submit(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
