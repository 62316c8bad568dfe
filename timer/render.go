package timer

// State is the controller's run state.
type State string

const (
	Stopped State = "stopped"
	Running State = "running"
)

// FinishedLabel is displayed once the queue is exhausted and no interval
// is active.
const FinishedLabel = "Finished"

const (
	startControl = "Start"
	stopControl  = "Stop"
)

// Frame is the display payload handed to a renderer on each refresh.
type Frame struct {
	// Label is the active interval's name, the name of the interval at
	// the head of the queue, or FinishedLabel when neither exists.
	Label string
	// DurationText is the remaining time formatted as "MM:SS".
	DurationText string
	// ControlLabel names the toggle affordance: "Start" when stopped,
	// "Stop" when running.
	ControlLabel string
	State        State
	SecondsLeft  int
	// TotalSeconds is the full length of the interval the frame
	// describes, for progress display.
	TotalSeconds int
}

// Renderer consumes display frames. Render is invoked from the
// scheduler's deferred-execution context and must not call back into the
// controller's mutating operations.
type Renderer interface {
	Render(Frame)
}

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}
