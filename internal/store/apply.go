package store

import "strconv"

// Apply returns the state that results from running cmd against s.
// It never mutates its input: the task slice is copied before any
// write, so earlier states stay valid and applying the same command
// to the same state always yields the same result.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case SetInputText:
		s.NewTaskText = c.Text
		s.AddEnabled = len(c.Text) >= 1

	case SetPendingDuration:
		n, err := strconv.Atoi(c.Text)
		if err != nil {
			n = 0
		}
		s.PendingDuration = n

	case AddTask:
		// The add gate lives in the view; an empty NewTaskText still
		// produces a task here.
		tasks := make([]Task, len(s.Tasks), len(s.Tasks)+1)
		copy(tasks, s.Tasks)
		s.Tasks = append(tasks, Task{
			ID:              s.nextID,
			Text:            s.NewTaskText,
			DurationMinutes: s.PendingDuration,
		})
		s.nextID++
		s.NewTaskText = ""
		s.AddEnabled = false
		s.PendingDuration = 0

	case ToggleComplete:
		s.Tasks = mutate(s.Tasks, c.ID, func(t *Task) {
			t.Complete = !t.Complete
		})

	case ToggleEdit:
		var draft string
		found := false
		s.Tasks = mutate(s.Tasks, c.ID, func(t *Task) {
			t.Editing = !t.Editing
			draft = t.Text
			found = true
		})
		if found {
			s.EditDraft = draft
		}

	case SetEditDraft:
		s.EditDraft = c.Text

	case SubmitEdit:
		draft := s.EditDraft
		found := false
		s.Tasks = mutate(s.Tasks, c.ID, func(t *Task) {
			t.Text = draft
			t.Editing = false
			found = true
		})
		if found {
			s.EditDraft = ""
		}

	case DeleteTask:
		tasks := make([]Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			if t.ID != c.ID {
				tasks = append(tasks, t)
			}
		}
		s.Tasks = tasks

	case ResetTimer:
		s.Tasks = mutate(s.Tasks, c.ID, func(t *Task) {
			t.ElapsedSeconds = 0
			t.Expired = false
		})

	case Tick:
		tasks := make([]Task, len(s.Tasks))
		copy(tasks, s.Tasks)
		for i := range tasks {
			t := &tasks[i]
			// Elapsed time freezes once a task is complete or expired.
			if t.Complete || t.Expired {
				continue
			}
			t.ElapsedSeconds++
			// The duration counts ticks: a task with a 2 minute budget
			// expires after 2 ticks.
			t.Expired = t.ElapsedSeconds >= t.DurationMinutes && t.DurationMinutes != 0
		}
		s.Tasks = tasks
	}
	return s
}

// mutate returns a copy of tasks with fn applied to the task matching
// id. An unknown id returns the slice untouched.
func mutate(tasks []Task, id int, fn func(*Task)) []Task {
	for i := range tasks {
		if tasks[i].ID == id {
			out := make([]Task, len(tasks))
			copy(out, tasks)
			fn(&out[i])
			return out
		}
	}
	return tasks
}
