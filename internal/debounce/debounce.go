// Package debounce coalesces bursts of events into one call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once no new trigger
// has arrived for delay. Each Trigger cancels the pending call and
// schedules a new one.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn

	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timer != timer {
			// superseded after this timer already fired
			d.mu.Unlock()
			return
		}
		run := d.pending
		d.timer = nil
		d.pending = nil
		d.mu.Unlock()

		run()
	})
	d.timer = timer
}

// Flush runs the pending call now, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	run := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = nil
	d.pending = nil
	d.mu.Unlock()

	if run != nil {
		run()
	}
}

// Stop drops the pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = nil
	d.pending = nil
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
