package timer

import (
	"sync"
	"time"

	"github.com/andres-erbsen/clock"
)

// Scheduler supplies the controller's two asynchronous primitives: a
// cancellable recurring tick, and a deferred callback used to decouple
// display refreshes from state mutation.
type Scheduler interface {
	// Every invokes fn once per interval until the returned cancel
	// function is called. Cancellation is idempotent.
	Every(interval time.Duration, fn func()) (cancel func())

	// Defer runs fn at the host's next repaint opportunity rather than
	// inline.
	Defer(fn func())
}

// clockScheduler implements Scheduler on top of an injected clock so that
// tests can drive the cadence programmatically.
type clockScheduler struct {
	clock clock.Clock
}

// NewScheduler returns a Scheduler backed by the given clock.
func NewScheduler(c clock.Clock) Scheduler {
	return &clockScheduler{clock: c}
}

func (s *clockScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := s.clock.Ticker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (s *clockScheduler) Defer(fn func()) {
	go fn()
}
