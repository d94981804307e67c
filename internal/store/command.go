package store

// Command is a discrete, named state-transition request. Commands are
// total: Apply never fails, it coerces bad input to defaults and
// treats unknown task IDs as no-ops.
type Command interface {
	isCommand()
}

// SetInputText replaces the add-form buffer and refreshes the derived
// add gate.
type SetInputText struct {
	Text string
}

// SetPendingDuration parses Text as the duration (in minutes) for the
// next added task. Unparsable input coerces to 0. The processor does
// not clamp; the view restricts the picker range.
type SetPendingDuration struct {
	Text string
}

// AddTask appends a task built from the pending input fields and
// resets them.
type AddTask struct{}

// ToggleComplete flips the completion flag of the identified task.
type ToggleComplete struct {
	ID int
}

// ToggleEdit flips the inline edit form of the identified task and
// seeds the edit draft with its current text.
type ToggleEdit struct {
	ID int
}

// SetEditDraft replaces the pending edit text.
type SetEditDraft struct {
	Text string
}

// SubmitEdit replaces the identified task's text with the edit draft
// and closes its edit form.
type SubmitEdit struct {
	ID int
}

// DeleteTask removes the identified task.
type DeleteTask struct {
	ID int
}

// ResetTimer restarts the identified task's countdown.
type ResetTimer struct {
	ID int
}

// Tick advances elapsed time by one second for every task that is
// neither complete nor expired.
type Tick struct{}

func (SetInputText) isCommand()       {}
func (SetPendingDuration) isCommand() {}
func (AddTask) isCommand()            {}
func (ToggleComplete) isCommand()     {}
func (ToggleEdit) isCommand()         {}
func (SetEditDraft) isCommand()       {}
func (SubmitEdit) isCommand()         {}
func (DeleteTask) isCommand()         {}
func (ResetTimer) isCommand()         {}
func (Tick) isCommand()               {}
