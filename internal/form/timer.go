package form

import (
	"sync"
	"time"
)

// autosaveTimer is the debounce resource behind draft autosave. A controller
// acquires one on mount and releases it with Close on unmount; after Close no
// scheduled write can fire. At most one timer is pending at a time: each
// Schedule cancels the previous one, so only the final pause after a burst of
// keystrokes triggers the callback.
type autosaveTimer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	closed bool
}

func newAutosaveTimer(delay time.Duration) *autosaveTimer {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &autosaveTimer{delay: delay}
}

// Schedule arms the timer to run fn after the debounce delay, cancelling any
// previously pending run. No-op after Close.
func (t *autosaveTimer) Schedule(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.closed || gen != t.gen {
			// Stopped or superseded after firing.
			return
		}
		// fn runs under the lock: Stop and Close cannot return while a
		// write is in flight. The callback never re-enters the timer.
		fn()
	})
}

// Stop cancels any pending run without releasing the resource. If the
// callback has already fired, Stop invalidates it and waits it out.
func (t *autosaveTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Close cancels any pending run and prevents all future ones. Like Stop it
// blocks until any in-flight callback has drained.
func (t *autosaveTimer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
