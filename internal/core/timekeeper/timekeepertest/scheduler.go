// Package timekeepertest provides a deterministic Scheduler for tests.
package timekeepertest

import (
	"sync"
	"time"

	"pomodoro/internal/core/timekeeper"
)

// ManualScheduler fires ticks only when Advance is called.
type ManualScheduler struct {
	mu        sync.Mutex
	schedules []*schedule
}

type schedule struct {
	interval time.Duration
	onTick   func()
	canceled bool
}

var _ timekeeper.Scheduler = (*ManualScheduler)(nil)

// Schedule implements timekeeper.Scheduler.
func (scheduler *ManualScheduler) Schedule(interval time.Duration, onTick func()) timekeeper.CancelFunc {
	entry := &schedule{interval: interval, onTick: onTick}
	scheduler.mu.Lock()
	scheduler.schedules = append(scheduler.schedules, entry)
	scheduler.mu.Unlock()

	return func() {
		scheduler.mu.Lock()
		entry.canceled = true
		scheduler.mu.Unlock()
	}
}

// Advance fires n ticks on every live schedule.
func (scheduler *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, entry := range scheduler.live() {
			entry.onTick()
		}
	}
}

// FireCanceled invokes every canceled callback once, simulating a tick that
// was already in flight when its schedule was canceled.
func (scheduler *ManualScheduler) FireCanceled() {
	scheduler.mu.Lock()
	var canceled []*schedule
	for _, entry := range scheduler.schedules {
		if entry.canceled {
			canceled = append(canceled, entry)
		}
	}
	scheduler.mu.Unlock()

	for _, entry := range canceled {
		entry.onTick()
	}
}

// Active returns the number of live schedules.
func (scheduler *ManualScheduler) Active() int {
	return len(scheduler.live())
}

// Scheduled returns the number of schedules ever created.
func (scheduler *ManualScheduler) Scheduled() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.schedules)
}

// LastInterval returns the interval of the most recent schedule.
func (scheduler *ManualScheduler) LastInterval() time.Duration {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if len(scheduler.schedules) == 0 {
		return 0
	}
	return scheduler.schedules[len(scheduler.schedules)-1].interval
}

func (scheduler *ManualScheduler) live() []*schedule {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var live []*schedule
	for _, entry := range scheduler.schedules {
		if !entry.canceled {
			live = append(live, entry)
		}
	}
	return live
}
