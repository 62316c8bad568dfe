package timer_test

import (
	"testing"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/stretchr/testify/require"

	"github.com/pomoq/pomoq/timer"
)

// manualScheduler records the recurring tick so tests can drive it by
// hand, and runs deferred callbacks synchronously.
type manualScheduler struct {
	tick     func()
	interval time.Duration
	cancels  int
}

func (s *manualScheduler) Every(d time.Duration, fn func()) func() {
	s.interval = d
	s.tick = fn

	return func() {
		s.cancels++
	}
}

func (s *manualScheduler) Defer(fn func()) {
	fn()
}

// recordRenderer captures every frame delivered to it.
type recordRenderer struct {
	frames []timer.Frame
}

func (r *recordRenderer) Render(f timer.Frame) {
	r.frames = append(r.frames, f)
}

func (r *recordRenderer) last() timer.Frame {
	if len(r.frames) == 0 {
		return timer.Frame{}
	}

	return r.frames[len(r.frames)-1]
}

func newTestController(
	defaults []timer.Timer,
	opts ...timer.Option,
) (*timer.Controller, *clock.Mock, *manualScheduler, *recordRenderer) {
	mock := clock.NewMock()
	sched := &manualScheduler{}
	renderer := &recordRenderer{}

	opts = append(
		[]timer.Option{
			timer.WithClock(mock),
			timer.WithScheduler(sched),
		},
		opts...,
	)

	ctrl := timer.NewController(defaults, renderer, opts...)

	return ctrl, mock, sched, renderer
}

func TestControllerStart(t *testing.T) {
	ctrl, _, sched, renderer := newTestController(nil)

	ctrl.Start()

	require.Equal(t, timer.Running, ctrl.State())

	current, ok := ctrl.Current()
	require.True(t, ok)
	require.Equal(t, "Work", current.Name())
	require.Equal(t, 1500, ctrl.SecondsLeft())
	require.Equal(t, 1, ctrl.Queued())

	require.NotNil(t, sched.tick, "expected a recurring tick to be scheduled")
	require.Equal(t, time.Second, sched.interval)

	last := renderer.last()
	require.Equal(t, "Work", last.Label)
	require.Equal(t, "25:00", last.DurationText)
	require.Equal(t, "Stop", last.ControlLabel)
}

func TestControllerAdvancesThroughQueue(t *testing.T) {
	ctrl, mock, sched, renderer := newTestController(nil)

	ctrl.Start()

	mock.Add(1500 * time.Second)
	sched.tick()

	current, ok := ctrl.Current()
	require.True(t, ok)
	require.Equal(t, "Rest", current.Name())
	require.Equal(t, 300, ctrl.SecondsLeft())
	require.Equal(t, timer.Running, ctrl.State())

	mock.Add(300 * time.Second)
	sched.tick()

	require.Equal(t, timer.Stopped, ctrl.State())

	_, ok = ctrl.Current()
	require.False(t, ok)

	require.Equal(t, 1, sched.cancels, "expected the recurring tick to be cancelled")

	last := renderer.last()
	require.Equal(t, timer.FinishedLabel, last.Label)
	require.Equal(t, "00:00", last.DurationText)
	require.Equal(t, "Start", last.ControlLabel)
}

func TestControllerDiscardsOvershoot(t *testing.T) {
	ctrl, mock, sched, _ := newTestController(nil)

	ctrl.Start()

	// the tick fires 7 seconds past the Work interval's expiry; the
	// overshoot must not be deducted from the Rest interval
	mock.Add(1507 * time.Second)
	sched.tick()

	current, ok := ctrl.Current()
	require.True(t, ok)
	require.Equal(t, "Rest", current.Name())
	require.Equal(t, 300, ctrl.SecondsLeft())

	mock.Add(299 * time.Second)
	sched.tick()

	require.Equal(t, timer.Running, ctrl.State())
	require.Equal(t, 1, ctrl.SecondsLeft())
}

func TestControllerMidIntervalTick(t *testing.T) {
	ctrl, mock, sched, renderer := newTestController(nil)

	ctrl.Start()

	mock.Add(125 * time.Second)
	sched.tick()

	require.Equal(t, 1375, ctrl.SecondsLeft())
	require.Equal(t, "22:55", renderer.last().DurationText)
}

func TestControllerStopCancelsTicks(t *testing.T) {
	ctrl, mock, sched, renderer := newTestController(nil)

	ctrl.Start()
	ctrl.Stop()

	require.Equal(t, timer.Stopped, ctrl.State())
	require.Equal(t, 1, sched.cancels)
	require.Equal(t, 0, ctrl.SecondsLeft())

	frames := len(renderer.frames)

	// an in-flight callback arriving after cancellation must be ignored
	mock.Add(10 * time.Second)
	sched.tick()

	require.Equal(t, timer.Stopped, ctrl.State())
	require.Equal(t, 0, ctrl.SecondsLeft())
	require.Len(t, renderer.frames, frames)
}

func TestControllerStopWhileStoppedIsNoOp(t *testing.T) {
	var stops int

	ctrl, _, sched, _ := newTestController(
		nil,
		timer.WithOnStop(func() { stops++ }),
	)

	ctrl.Stop()

	require.Equal(t, timer.Stopped, ctrl.State())
	require.Zero(t, sched.cancels)
	require.Zero(t, stops, "stop hook must not fire for a stopped controller")
}

func TestControllerToggle(t *testing.T) {
	ctrl, _, _, _ := newTestController(nil)

	ctrl.Toggle()
	require.Equal(t, timer.Running, ctrl.State())

	ctrl.Toggle()
	require.Equal(t, timer.Stopped, ctrl.State())
}

func TestControllerEmptyDefaultList(t *testing.T) {
	ctrl, _, sched, renderer := newTestController([]timer.Timer{})

	ctrl.Start()

	require.Equal(t, timer.Stopped, ctrl.State())

	_, ok := ctrl.Current()
	require.False(t, ok)

	require.Nil(t, sched.tick, "no recurring tick should be scheduled")
	require.Equal(t, timer.FinishedLabel, renderer.last().Label)
}

func TestControllerZeroDurationExpiresImmediately(t *testing.T) {
	defaults := []timer.Timer{
		timer.New("Skip", 0),
		timer.New("Rest", 120),
	}

	ctrl, _, _, _ := newTestController(defaults)

	ctrl.Start()

	current, ok := ctrl.Current()
	require.True(t, ok)
	require.Equal(t, "Rest", current.Name())
	require.Equal(t, 120, ctrl.SecondsLeft())
	require.Equal(t, timer.Running, ctrl.State())
}

func TestControllerNegativeDurationExpiresImmediately(t *testing.T) {
	defaults := []timer.Timer{timer.New("Broken", -5)}

	ctrl, _, _, _ := newTestController(defaults)

	ctrl.Start()

	require.Equal(t, timer.Stopped, ctrl.State())
}

func TestControllerRestartReseedsQueue(t *testing.T) {
	ctrl, mock, sched, _ := newTestController(nil)

	ctrl.Start()
	mock.Add(1500 * time.Second)
	sched.tick()
	ctrl.Stop()

	ctrl.Start()

	current, ok := ctrl.Current()
	require.True(t, ok)
	require.Equal(t, "Work", current.Name())
	require.Equal(t, 1500, ctrl.SecondsLeft())
	require.Equal(t, 1, ctrl.Queued())
}

func TestControllerStartWhileRunningIsNoOp(t *testing.T) {
	ctrl, mock, sched, _ := newTestController(nil)

	ctrl.Start()
	mock.Add(100 * time.Second)
	sched.tick()

	ctrl.Start()

	require.Equal(t, 1400, ctrl.SecondsLeft())
}

func TestControllerNotifyHook(t *testing.T) {
	type advance struct {
		completed string
		next      string
	}

	ch := make(chan advance, 2)

	ctrl, mock, sched, _ := newTestController(
		nil,
		timer.WithNotify(func(completed timer.Timer, next *timer.Timer) {
			a := advance{completed: completed.Name()}
			if next != nil {
				a.next = next.Name()
			}
			ch <- a
		}),
	)

	ctrl.Start()

	mock.Add(1500 * time.Second)
	sched.tick()

	select {
	case got := <-ch:
		require.Equal(t, advance{completed: "Work", next: "Rest"}, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the interval-completion hook")
	}

	mock.Add(300 * time.Second)
	sched.tick()

	select {
	case got := <-ch:
		require.Equal(t, advance{completed: "Rest"}, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the final-completion hook")
	}
}

func TestControllerStoppedFrameShowsQueueHead(t *testing.T) {
	ctrl, mock, sched, _ := newTestController(nil)

	ctrl.Start()
	mock.Add(10 * time.Second)
	sched.tick()
	ctrl.Stop()

	// Rest is still queued after a manual stop, so the display points at
	// it rather than claiming the run finished
	f := ctrl.Frame()

	require.Equal(t, timer.Stopped, f.State)
	require.Equal(t, "Rest", f.Label)
	require.Equal(t, "00:00", f.DurationText)
	require.Equal(t, "Start", f.ControlLabel)
}
