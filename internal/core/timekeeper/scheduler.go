package timekeeper

import (
	"sync"
	"time"
)

// CancelFunc stops a schedule. It is synchronous and safe to call more than
// once.
type CancelFunc func()

// Scheduler invokes onTick every interval until the returned CancelFunc is
// called.
type Scheduler interface {
	Schedule(interval time.Duration, onTick func()) CancelFunc
}

// TickerScheduler is the wall-clock Scheduler backed by time.Ticker.
type TickerScheduler struct{}

// Schedule starts a ticking goroutine.
func (TickerScheduler) Schedule(interval time.Duration, onTick func()) CancelFunc {
	if interval <= 0 {
		interval = time.Second
	}
	stopCh := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				// A tick and a cancel can be ready together; cancel wins.
				select {
				case <-stopCh:
					return
				default:
				}
				onTick()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
