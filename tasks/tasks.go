// Package tasks holds the in-memory task list displayed alongside the
// countdown. Tasks live only for the duration of the program.
package tasks

import (
	"strings"
	"sync"
)

// Task is a single to-do entry.
type Task struct {
	Title string
	Done  bool
}

// List is an ordered collection of tasks. All methods are safe for
// concurrent use.
type List struct {
	mu    sync.Mutex
	items []Task
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{}
}

// Add appends a task with the given title. Titles are trimmed of
// surrounding whitespace; an empty title is ignored.
func (l *List) Add(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, Task{Title: title})

	return true
}

// Remove deletes the task at the given position. It reports whether a
// task was removed.
func (l *List) Remove(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.items) {
		return false
	}

	l.items = append(l.items[:i], l.items[i+1:]...)

	return true
}

// Toggle flips the done state of the task at the given position. It
// reports whether a task was toggled.
func (l *List) Toggle(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.items) {
		return false
	}

	l.items[i].Done = !l.items[i].Done

	return true
}

// Items returns a copy of the tasks in insertion order.
func (l *List) Items() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Task(nil), l.items...)
}

// Count returns the number of tasks.
func (l *List) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

// Remaining returns the number of tasks not yet done.
func (l *List) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int

	for _, t := range l.items {
		if !t.Done {
			n++
		}
	}

	return n
}
