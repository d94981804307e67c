// Package store holds the application state and the pure command
// processor that advances it. It has no UI or I/O dependencies: the
// TUI translates key presses into commands and renders the resulting
// state.
package store

import "fmt"

// Task represents a single to-do entry.
//
// ID is a synthetic identifier assigned at creation time and never
// changed afterwards, so editing a task's text cannot make it collide
// with another task.
type Task struct {
	ID              int
	Text            string
	Complete        bool
	Editing         bool
	DurationMinutes int // 0 means no deadline
	ElapsedSeconds  int // ticks counted while the task is active
	Expired         bool
}

// State is the single aggregate the command processor operates on.
type State struct {
	// Tasks in insertion order.
	Tasks []Task

	// NewTaskText is the pending input buffer for the add form.
	NewTaskText string

	// AddEnabled gates the add action; derived from NewTaskText.
	AddEnabled bool

	// EditDraft is the pending text for whichever task is being edited.
	EditDraft string

	// PendingDuration is the duration (in minutes) for the next added task.
	PendingDuration int

	nextID int
}

// NewState returns an empty state ready to accept commands.
func NewState() State {
	return State{nextID: 1}
}

// TaskByID returns the task with the given id, if present.
func (s State) TaskByID(id int) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// DoneLabel is displayed in place of a countdown once a task is complete.
const DoneLabel = "task complete"

// RemainingLabel returns the countdown text for a task: the fixed done
// message when complete, the positive remaining budget while counting
// down, and nothing once the budget is spent or no deadline is set.
func RemainingLabel(t Task) string {
	if t.Complete {
		return DoneLabel
	}
	remaining := t.DurationMinutes - t.ElapsedSeconds
	if remaining <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min left", remaining)
}
