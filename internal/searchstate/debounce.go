package searchstate

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce delay used when none is configured.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces rapid query updates into one apply call per quiet
// period. It is single-flight: each Set cancels the pending apply and
// reschedules it with the latest query.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	apply func(query string)
}

// NewDebouncer returns a debouncer that calls apply once the given quiet
// period elapses after the last Set. A non-positive delay falls back to
// DefaultQuietPeriod.
func NewDebouncer(delay time.Duration, apply func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}

	return &Debouncer{delay: delay, apply: apply}
}

// Set schedules apply(query), cancelling any apply still pending.
func (d *Debouncer) Set(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.apply(query)
	})
}

// Stop cancels the pending apply, if any. The debouncer stays usable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
