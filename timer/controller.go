package timer

import (
	"sync"
	"time"

	"github.com/andres-erbsen/clock"
)

// tickInterval is the cadence at which a running countdown is recomputed.
const tickInterval = time.Second

// Controller owns the timer queue and drives progression through it.
// Starting a run reseeds the queue from the configured default list, pops
// the head as the active interval, and schedules a recurring tick that
// recomputes the remaining time against the injected clock. When an
// interval expires the next one is popped; when the queue is exhausted
// the controller stops. All methods are safe for concurrent use.
type Controller struct {
	mu          sync.Mutex
	queue       *Queue
	defaults    []Timer
	current     Timer
	active      bool
	startedAt   time.Time
	secondsLeft int
	state       State
	cancelTick  func()

	clock    clock.Clock
	sched    Scheduler
	renderer Renderer
	notify   NotifyFunc
	onStop   func()
}

// DefaultTimers is the seed sequence used when no interval list is
// configured: a 25-minute work interval followed by a 5-minute rest.
func DefaultTimers() []Timer {
	return []Timer{
		New("Work", 1500),
		New("Rest", 300),
	}
}

// NewController creates a controller seeded with the given ordered
// interval list. A nil list falls back to DefaultTimers; an explicitly
// empty list is honoured and produces a run that stops immediately.
func NewController(defaults []Timer, r Renderer, opts ...Option) *Controller {
	if defaults == nil {
		defaults = DefaultTimers()
	}

	c := &Controller{
		queue:    NewQueue(),
		defaults: append([]Timer(nil), defaults...),
		state:    Stopped,
		clock:    clock.New(),
		renderer: r,
	}

	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sched == nil {
		c.sched = NewScheduler(c.clock)
	}

	return c
}

// Start begins a new countdown cycle. The queue is cleared and reseeded
// from the default list in order, the head interval becomes active, and a
// recurring one-second tick is scheduled after one immediate tick. Start
// is a no-op while a run is already in progress. An empty default list
// falls through to the stop transition straight away.
func (c *Controller) Start() {
	c.mu.Lock()

	if c.state == Running {
		c.mu.Unlock()
		return
	}

	c.queue.Clear()

	for _, t := range c.defaults {
		c.queue.Push(t)
	}

	head, ok := c.queue.Pop()
	if !ok {
		c.mu.Unlock()
		c.Stop()

		return
	}

	c.current = head
	c.active = true
	c.startedAt = c.clock.Now()
	c.secondsLeft = head.Duration()
	c.state = Running
	c.mu.Unlock()

	c.Tick()

	c.mu.Lock()
	// the immediate tick may already have exhausted the queue
	if c.state == Running && c.cancelTick == nil {
		c.cancelTick = c.sched.Every(tickInterval, c.Tick)
	}
	c.mu.Unlock()
}

// Stop ends the current run: the recurring tick is cancelled, the active
// interval is cleared, and a display refresh is requested. Stopping an
// already stopped controller is a harmless no-op.
func (c *Controller) Stop() {
	c.mu.Lock()

	wasRunning := c.state == Running
	cancel := c.cancelTick
	c.cancelTick = nil
	c.current = Timer{}
	c.active = false
	c.secondsLeft = 0
	c.state = Stopped
	onStop := c.onStop

	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	c.requestRender()

	if wasRunning && onStop != nil {
		onStop()
	}
}

// Toggle is the single external input trigger: it starts a stopped
// controller and stops a running one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	running := c.state == Running
	c.mu.Unlock()

	if running {
		c.Stop()
	} else {
		c.Start()
	}
}

// Tick recomputes the remaining time of the active interval, requests a
// deferred display refresh, and advances to the next interval once the
// current one has expired. Ticks received after the controller stops are
// ignored.
func (c *Controller) Tick() {
	c.mu.Lock()

	if c.state != Running {
		c.mu.Unlock()
		return
	}

	elapsed := int(c.clock.Now().Sub(c.startedAt) / time.Second)
	c.secondsLeft = c.current.Duration() - elapsed
	expired := c.secondsLeft <= 0

	c.mu.Unlock()

	c.requestRender()

	if !expired {
		return
	}

	c.advance()
}

// advance pops the next interval from the queue or stops the controller
// when none remains. Any overshoot past the previous interval's expiry is
// discarded rather than carried into the next countdown.
func (c *Controller) advance() {
	c.mu.Lock()

	if c.state != Running {
		c.mu.Unlock()
		return
	}

	completed := c.current

	next, ok := c.queue.Pop()
	if !ok {
		notify := c.notify
		c.mu.Unlock()

		c.Stop()

		if notify != nil {
			go notify(completed, nil)
		}

		return
	}

	c.current = next
	c.startedAt = c.clock.Now()
	c.secondsLeft = next.Duration()
	notify := c.notify

	c.mu.Unlock()

	if notify != nil {
		go notify(completed, &next)
	}
}

// requestRender schedules a display refresh. The frame is snapshotted
// when the deferred callback runs, so the renderer always paints the
// state current at paint time.
func (c *Controller) requestRender() {
	c.sched.Defer(func() {
		c.renderer.Render(c.Frame())
	})
}

// Frame snapshots the current display payload.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		State:        c.state,
		ControlLabel: startControl,
	}

	switch {
	case c.active:
		f.ControlLabel = stopControl
		f.Label = c.current.Name()
		f.TotalSeconds = c.current.Duration()
	default:
		if head, ok := c.queue.Peek(); ok {
			f.Label = head.Name()
			f.TotalSeconds = head.Duration()
		} else {
			f.Label = FinishedLabel
		}
	}

	secs := c.secondsLeft
	if secs < 0 {
		secs = 0
	}

	f.SecondsLeft = secs
	f.DurationText = FormatSeconds(secs)

	return f
}

// State returns the controller's run state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Current returns the active interval. The second return value is false
// while the controller is stopped.
func (c *Controller) Current() (Timer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current, c.active
}

// SecondsLeft returns the remaining seconds of the active interval as of
// the last tick.
func (c *Controller) SecondsLeft() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.secondsLeft
}

// Remaining returns the remaining time of the active interval broken
// into minutes and seconds.
func (c *Controller) Remaining() Remainder {
	return RemainderOf(c.SecondsLeft())
}

// Queued returns the number of intervals still waiting in the queue.
func (c *Controller) Queued() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.queue.Count()
}
