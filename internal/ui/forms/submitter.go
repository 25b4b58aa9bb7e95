package forms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/portfolio/internal/ui/schedule"
)

// Message is a validated contact form submission.
type Message struct {
	ID      string
	Name    string
	Email   string
	Subject string
	Body    string
	SentAt  time.Time
}

// Receipt acknowledges a delivered Message.
type Receipt struct {
	ID        string
	MessageID string
}

// Submitter delivers a Message and reports the outcome through done. done is
// called exactly once, on the UI event loop.
type Submitter interface {
	Submit(ctx context.Context, msg Message, done func(Receipt, error))
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, msg Message, done func(Receipt, error))

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, msg Message, done func(Receipt, error)) {
	f(ctx, msg, done)
}

// Simulated stands in for a network request: it waits Delay and succeeds.
type Simulated struct {
	Scheduler schedule.Scheduler
	Delay     time.Duration
}

// Submit implements Submitter.
func (s Simulated) Submit(ctx context.Context, msg Message, done func(Receipt, error)) {
	s.Scheduler.AfterFunc(s.Delay, func() {
		if err := ctx.Err(); err != nil {
			done(Receipt{}, err)
			return
		}
		done(Receipt{ID: uuid.NewString(), MessageID: msg.ID}, nil)
	})
}
