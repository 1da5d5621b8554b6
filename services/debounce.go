package services

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet window for autocomplete lookups.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer is a cancellable timer for one input field: every Call cancels
// the pending timer and schedules a new one, so only the function passed
// with the last call within the quiet window actually runs. Use one
// Debouncer per field.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	wait  time.Duration
}

func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &Debouncer{wait: wait}
}

// Call schedules fn after the quiet window, cancelling any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
