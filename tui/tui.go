// Package tui implements the interactive terminal interface: a countdown
// display driven by the timer controller, with a task list alongside it.
package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pomoq/pomoq/tasks"
	"github.com/pomoq/pomoq/timer"
)

// FrameMsg carries a display frame from the controller into the program's
// update loop.
type FrameMsg timer.Frame

// Renderer adapts a tea.Program to the controller's render contract.
// Frames arriving before Attach are dropped; the model paints its own
// initial frame.
type Renderer struct {
	mu sync.Mutex
	p  *tea.Program
}

// NewRenderer returns an unattached renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Attach connects the renderer to a running program.
func (r *Renderer) Attach(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.p = p
}

// Render implements timer.Renderer.
func (r *Renderer) Render(f timer.Frame) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()

	if p != nil {
		p.Send(FrameMsg(f))
	}
}

// Model is the bubbletea model for the timer widget.
type Model struct {
	ctrl     *timer.Controller
	tasks    *tasks.List
	keymap   keymap
	help     help.Model
	progress progress.Model
	input    textinput.Model
	frame    timer.Frame
	cursor   int
	adding   bool
	quitting bool
}

// NewModel creates the interface model around an existing controller and
// task list.
func NewModel(ctrl *timer.Controller, taskList *tasks.List) Model {
	input := textinput.New()
	input.Placeholder = "Task description"
	input.CharLimit = 120

	return Model{
		ctrl:     ctrl,
		tasks:    taskList,
		keymap:   defaultKeymap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		input:    input,
		frame:    ctrl.Frame(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = timer.Frame(msg)
		return m, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxProgressWidth {
			width = maxProgressWidth
		}

		if width > 0 {
			m.progress.Width = width
		}

		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateTaskInput(msg)
		}

		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.toggle):
		m.ctrl.Toggle()
		// paint the new state right away instead of waiting for the
		// deferred refresh
		m.frame = m.ctrl.Frame()

	case key.Matches(msg, m.keymap.add):
		m.adding = true
		m.input.Focus()

		return m, textinput.Blink

	case key.Matches(msg, m.keymap.done):
		m.tasks.Toggle(m.cursor)

	case key.Matches(msg, m.keymap.remove):
		if m.tasks.Remove(m.cursor) && m.cursor > 0 &&
			m.cursor >= m.tasks.Count() {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.down):
		if m.cursor < m.tasks.Count()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.quit):
		m.quitting = true
		m.ctrl.Stop()

		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.tasks.Add(m.input.Value()) {
			m.cursor = m.tasks.Count() - 1
		}

		m.input.Reset()
		m.input.Blur()
		m.adding = false

		return m, nil

	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.adding = false

		return m, nil

	case "ctrl+c":
		m.quitting = true
		m.ctrl.Stop()

		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}
