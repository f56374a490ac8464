package form

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutosaveTimer_ScheduleDebounces(t *testing.T) {
	timer := newAutosaveTimer(20 * time.Millisecond)
	defer timer.Close()

	var calls atomic.Int32
	timer.Schedule(func() { calls.Add(1) })
	timer.Schedule(func() { calls.Add(1) })
	timer.Schedule(func() { calls.Add(1) })

	time.Sleep(80 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load(), "Only the final schedule may fire")
}

func TestAutosaveTimer_StopCancelsPendingRun(t *testing.T) {
	timer := newAutosaveTimer(20 * time.Millisecond)
	defer timer.Close()

	var calls atomic.Int32
	timer.Schedule(func() { calls.Add(1) })
	timer.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestAutosaveTimer_CloseWaitsForInFlightWrite(t *testing.T) {
	timer := newAutosaveTimer(time.Millisecond)

	entered := make(chan struct{})
	var finished atomic.Bool
	timer.Schedule(func() {
		close(entered)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	<-entered
	timer.Close()
	assert.True(t, finished.Load(), "Close must not return while a write is in flight")

	var calls atomic.Int32
	timer.Schedule(func() { calls.Add(1) })
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load(), "No write may be scheduled after Close")
}

func TestAutosaveTimer_StopRaceNeverResurrectsWrite(t *testing.T) {
	// Drive the fire/Stop window repeatedly: once Stop has returned, the
	// callback it raced must never run.
	for i := 0; i < 50; i++ {
		timer := newAutosaveTimer(time.Millisecond)

		var stopped atomic.Bool
		var late atomic.Bool
		timer.Schedule(func() {
			if stopped.Load() {
				late.Store(true)
			}
		})

		time.Sleep(time.Millisecond) // land inside the firing window
		timer.Stop()
		stopped.Store(true)

		time.Sleep(5 * time.Millisecond)
		assert.False(t, late.Load(), "Write landed after Stop returned")
		timer.Close()
	}
}
