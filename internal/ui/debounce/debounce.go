// Package debounce collapses bursts of calls into one trailing invocation.
package debounce

import (
	"time"

	"github.com/Its-donkey/portfolio/internal/ui/schedule"
)

// Debouncer delays fn until wait has passed without another Trigger.
// It is meant for the single-threaded browser event loop and is not safe for
// concurrent use.
type Debouncer[T any] struct {
	sched   schedule.Scheduler
	wait    time.Duration
	fn      func(T)
	pending schedule.Timer
}

// New wraps fn so that only the last call in any wait-sized burst runs.
func New[T any](sched schedule.Scheduler, wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{sched: sched, wait: wait, fn: fn}
}

// Trigger cancels any pending call and schedules fn(arg) after the wait.
func (d *Debouncer[T]) Trigger(arg T) {
	d.Cancel()
	var timer schedule.Timer
	timer = d.sched.AfterFunc(d.wait, func() {
		if d.pending == timer {
			d.pending = nil
		}
		d.fn(arg)
	})
	d.pending = timer
}

// Cancel drops the pending call, if any.
func (d *Debouncer[T]) Cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	return d.pending != nil
}
