// Package schedule provides the timer primitive every delayed UI effect runs on.
//
// In the browser the scheduler is backed by setTimeout, so callbacks run on the
// JS event loop one at a time. Tests use Virtual to step time deterministically.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Virtual is a manually advanced clock. Callbacks fire synchronously inside
// Advance, ordered by deadline and then by scheduling order.
type Virtual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	clock *Virtual
	at    time.Duration
	seq   uint64
	fn    func()
	done  bool
}

// NewVirtual returns a Virtual clock positioned at zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// AfterFunc implements Scheduler.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	t := &virtualTimer{clock: v, at: v.now + d, seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return t
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// Advance moves the clock forward by d, firing every callback whose deadline
// falls inside the window. Callbacks scheduled while advancing fire too if
// their deadline is reached.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now + d
	v.mu.Unlock()

	for {
		t := v.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	v.mu.Lock()
	if v.now < target {
		v.now = target
	}
	v.mu.Unlock()
}

func (v *Virtual) popDue(target time.Duration) *virtualTimer {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.timers) == 0 {
		return nil
	}
	sort.SliceStable(v.timers, func(i, j int) bool {
		if v.timers[i].at == v.timers[j].at {
			return v.timers[i].seq < v.timers[j].seq
		}
		return v.timers[i].at < v.timers[j].at
	})
	next := v.timers[0]
	if next.at > target {
		return nil
	}
	v.timers = v.timers[1:]
	next.done = true
	if next.at > v.now {
		v.now = next.at
	}
	return next
}

func (t *virtualTimer) Stop() bool {
	v := t.clock
	v.mu.Lock()
	defer v.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	for i, other := range v.timers {
		if other == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			break
		}
	}
	return true
}
