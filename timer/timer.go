// Package timer implements the pomoq countdown core: immutable named
// intervals, the FIFO queue they wait in, and the controller state machine
// that advances through them at a one-second cadence.
package timer

import "fmt"

const secondsInAMinute = 60

// Timer is an immutable named duration. A zero or negative duration is
// valid and expires on the first tick.
type Timer struct {
	name     string
	duration int // whole seconds
}

// New returns a timer with the given name and duration in seconds.
// Construction never fails.
func New(name string, durationSeconds int) Timer {
	return Timer{
		name:     name,
		duration: durationSeconds,
	}
}

// Name returns the timer's display name.
func (t Timer) Name() string {
	return t.name
}

// Duration returns the timer's length in whole seconds.
func (t Timer) Duration() int {
	return t.duration
}

// Remainder is the time remaining in an active countdown.
type Remainder struct {
	T int // total seconds
	M int // minutes
	S int // seconds
}

// RemainderOf breaks a total number of seconds into minutes and seconds.
// Negative totals clamp to zero.
func RemainderOf(total int) Remainder {
	if total < 0 {
		total = 0
	}

	return Remainder{
		T: total,
		M: total / secondsInAMinute,
		S: total % secondsInAMinute,
	}
}

// String formats the remainder as zero-padded minutes and seconds,
// e.g. 125 seconds -> "02:05".
func (r Remainder) String() string {
	return fmt.Sprintf("%02d:%02d", r.M, r.S)
}

// FormatSeconds formats a seconds value as "MM:SS".
func FormatSeconds(total int) string {
	return RemainderOf(total).String()
}
