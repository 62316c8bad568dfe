package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/pomoq/pomoq/timer"
)

const maxProgressWidth = 40

var (
	baseStyle = lipgloss.NewStyle().Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	finishedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	hintStyle = lipgloss.NewStyle().Faint(true)

	selectedTaskStyle = lipgloss.NewStyle().Bold(true)

	doneTaskStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)
)

func (m Model) timerView() string {
	var s strings.Builder

	switch {
	case m.frame.State == timer.Running:
		s.WriteString(labelStyle.Render(m.frame.Label))

	case m.frame.Label == timer.FinishedLabel:
		s.WriteString(finishedStyle.Render(m.frame.Label))

	default:
		s.WriteString(labelStyle.Render(m.frame.Label))
		s.WriteString(hintStyle.Render(" (stopped)"))
	}

	s.WriteString("\n\n")
	s.WriteString(clockStyle.Render(m.frame.DurationText))

	if m.frame.State == timer.Running {
		s.WriteString("\n\n")
		s.WriteString(m.progress.ViewAs(m.percentElapsed()))
	}

	return s.String()
}

// percentElapsed reports countdown progress for the progress bar.
func (m Model) percentElapsed() float64 {
	if m.frame.TotalSeconds <= 0 {
		return 0
	}

	return 1 - float64(m.frame.SecondsLeft)/float64(m.frame.TotalSeconds)
}

func (m Model) tasksView() string {
	items := m.tasks.Items()
	if len(items) == 0 {
		return hintStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var s strings.Builder

	for i, t := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
		}

		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, mark, t.Title)

		switch {
		case t.Done:
			line = doneTaskStyle.Render(line)
		case i == m.cursor:
			line = selectedTaskStyle.Render(line)
		}

		s.WriteString(line)

		if i < len(items)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m Model) helpView() string {
	return m.help.ShortHelpView([]key.Binding{
		m.keymap.toggle,
		m.keymap.add,
		m.keymap.done,
		m.keymap.remove,
		m.keymap.quit,
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.timerView())
	s.WriteString("\n\n")
	s.WriteString(m.tasksView())

	if m.adding {
		s.WriteString("\n\n")
		s.WriteString(m.input.View())
	}

	s.WriteString("\n\n")
	s.WriteString(m.helpView())

	return baseStyle.Render(s.String())
}
