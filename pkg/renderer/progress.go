package renderer

import (
	"sync/atomic"
	"time"
)

// progressInterval is how often the progress callback is polled
const progressInterval = 250 * time.Millisecond

// ProgressFunc receives the number of finished pixels out of total. It is
// called from a single goroutine, and always once more when the render ends.
type ProgressFunc func(done, total int)

type progressMonitor struct {
	done     chan struct{}
	finished chan struct{}
}

// startProgressMonitor polls counter until stop is called. A nil callback
// starts nothing.
func startProgressMonitor(counter *atomic.Int64, total int, report ProgressFunc) *progressMonitor {
	m := &progressMonitor{
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	if report == nil {
		close(m.finished)
		return m
	}

	go func() {
		defer close(m.finished)
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				report(int(counter.Load()), total)
			case <-m.done:
				report(int(counter.Load()), total)
				return
			}
		}
	}()

	return m
}

// stop ends polling after one final report and waits for the goroutine
func (m *progressMonitor) stop() {
	close(m.done)
	<-m.finished
}
