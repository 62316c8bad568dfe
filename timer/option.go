package timer

import "github.com/andres-erbsen/clock"

// Option configures a Controller.
type Option func(*Controller)

// WithClock substitutes the time source used to compute remaining time.
// The default is the wall clock.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

// WithScheduler substitutes the scheduler that drives the recurring tick
// and defers display refreshes. The default is backed by the controller's
// clock.
func WithScheduler(s Scheduler) Option {
	return func(ctrl *Controller) {
		ctrl.sched = s
	}
}

// WithNotify registers a hook invoked after each interval completes.
func WithNotify(fn NotifyFunc) Option {
	return func(ctrl *Controller) {
		ctrl.notify = fn
	}
}

// WithOnStop registers a hook invoked whenever the controller transitions
// to the stopped state.
func WithOnStop(fn func()) Option {
	return func(ctrl *Controller) {
		ctrl.onStop = fn
	}
}
