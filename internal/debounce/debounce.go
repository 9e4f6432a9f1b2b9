// Package debounce coalesces bursts of calls into a single trailing
// invocation after a quiet period.
//
// This is the keystroke-side half of keeping async UI state sane: the
// debouncer decides when work starts, the guard package decides whose
// completion may land. A search box wires both together.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a callback until calls have stopped arriving for the
// configured quiet period. Each Call resets the timer and replaces the
// pending callback, so only the latest one ever fires.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	stopped bool
}

// New creates a debouncer with the given quiet period.
// A non-positive delay falls back to 250ms.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 250 * time.Millisecond
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the quiet period. A call made while a
// previous one is still waiting replaces it — the earlier fn is dropped,
// never fired.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush runs the pending callback immediately, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Cancel drops the pending callback, if any, without firing it. Unlike
// Stop, the debouncer stays usable afterwards.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop drops any pending callback and refuses future ones. Part of owner
// teardown: a debounce timer must never outlive the thing that armed it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs after the quiet period elapses.
func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	stopped := d.stopped
	d.mu.Unlock()

	// Callback runs outside the lock so it may call back into the
	// debouncer without deadlocking.
	if fn != nil && !stopped {
		fn()
	}
}
