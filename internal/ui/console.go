package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/pomoq/pomoq/timer"
)

// Console renders countdown frames on a single rewritten terminal line.
// It is used by the --simple mode for terminals where the full-screen
// interface is unwanted.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole returns a console renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Render implements timer.Renderer.
func (c *Console) Render(f timer.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// clear the line before rewriting it
	fmt.Fprint(c.out, "\r\033[K")

	if f.State == timer.Stopped {
		if f.Label == timer.FinishedLabel {
			fmt.Fprintf(c.out, "%s\n", Green(f.Label))
			return
		}

		fmt.Fprintf(
			c.out,
			"%s (next: %s)\n",
			Magenta("Stopped"),
			Highlight(f.Label),
		)

		return
	}

	fmt.Fprintf(
		c.out,
		"🕒%s %s",
		Green(f.Label),
		Yellow(f.DurationText),
	)
}
