package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/tickdo/internal/config"
	"github.com/pablasso/tickdo/internal/store"
	"github.com/pablasso/tickdo/internal/tui/components"
	"github.com/pablasso/tickdo/internal/tui/styles"
)

// mode represents the input mode of the task list view.
type mode int

const (
	modeNormal mode = iota
	modeAdding
	modeEditing
)

// tickMsg advances every active countdown by one second.
type tickMsg time.Time

// TaskListModel is the single-screen task list. All state transitions
// go through the store: key presses are translated into commands and
// the view renders whatever state comes back.
type TaskListModel struct {
	state  store.State
	cfg    *config.Config
	mode   mode
	cursor int
	input  textinput.Model
	editID int // task being edited while in modeEditing
	width  int
	height int
}

// NewTaskListModel creates a new TaskListModel with an empty list and
// the configured default duration preselected.
func NewTaskListModel(cfg *config.Config) TaskListModel {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40

	state := store.NewState()
	state = store.Apply(state, store.SetPendingDuration{Text: strconv.Itoa(cfg.DefaultDuration)})

	return TaskListModel{
		state: state,
		cfg:   cfg,
		input: ti,
	}
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next timer event one second out. The timer
// runs for the lifetime of the program; ticks queue like any other
// message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.state = store.Apply(m.state, store.Tick{})
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.handleNormalKeys(msg)
		case modeAdding:
			return m.handleAddingKeys(msg)
		case modeEditing:
			return m.handleEditingKeys(msg)
		}
	}
	return m, nil
}

// handleNormalKeys handles navigation and task actions.
func (m TaskListModel) handleNormalKeys(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}

	case "a":
		m.mode = modeAdding
		m.input.SetValue(m.state.NewTaskText)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		if t, ok := m.selectedTask(); ok {
			m.state = store.Apply(m.state, store.ToggleEdit{ID: t.ID})
			m.mode = modeEditing
			m.editID = t.ID
			m.input.SetValue(m.state.EditDraft)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case " ", "x":
		if t, ok := m.selectedTask(); ok {
			m.state = store.Apply(m.state, store.ToggleComplete{ID: t.ID})
			m.clampCursor()
		}

	case "d":
		if t, ok := m.selectedTask(); ok {
			m.state = store.Apply(m.state, store.DeleteTask{ID: t.ID})
			m.clampCursor()
		}

	case "r":
		if t, ok := m.selectedTask(); ok {
			m.state = store.Apply(m.state, store.ResetTimer{ID: t.ID})
		}
	}
	return m, nil
}

// handleAddingKeys handles the add form. Every keystroke routes
// through the text input and is mirrored into the store, so the add
// gate always reflects the buffer.
func (m TaskListModel) handleAddingKeys(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !m.state.AddEnabled {
			return m, nil
		}
		m.state = store.Apply(m.state, store.AddTask{})
		m.state = store.Apply(m.state, store.SetPendingDuration{Text: strconv.Itoa(m.cfg.DefaultDuration)})
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNormal
		return m, nil

	case "esc":
		m.state = store.Apply(m.state, store.SetInputText{Text: ""})
		m.state = store.Apply(m.state, store.SetPendingDuration{Text: strconv.Itoa(m.cfg.DefaultDuration)})
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNormal
		return m, nil

	case "up":
		return m.stepPendingDuration(1), nil

	case "down":
		return m.stepPendingDuration(-1), nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = store.Apply(m.state, store.SetInputText{Text: m.input.Value()})
	return m, cmd
}

// handleEditingKeys handles the inline edit form of the selected task.
func (m TaskListModel) handleEditingKeys(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = store.Apply(m.state, store.SubmitEdit{ID: m.editID})
		m.input.Blur()
		m.mode = modeNormal
		m.editID = 0
		return m, nil

	case "esc":
		// Close the form and discard the draft.
		m.state = store.Apply(m.state, store.ToggleEdit{ID: m.editID})
		m.state = store.Apply(m.state, store.SetEditDraft{Text: ""})
		m.input.Blur()
		m.mode = modeNormal
		m.editID = 0
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = store.Apply(m.state, store.SetEditDraft{Text: m.input.Value()})
	return m, cmd
}

// stepPendingDuration moves the duration picker by delta, keeping it
// inside the 0..max_duration range the UI offers. The store itself
// accepts any integer.
func (m TaskListModel) stepPendingDuration(delta int) TaskListModel {
	next := m.state.PendingDuration + delta
	if next < 0 {
		next = 0
	}
	if next > m.cfg.MaxDuration {
		next = m.cfg.MaxDuration
	}
	m.state = store.Apply(m.state, store.SetPendingDuration{Text: strconv.Itoa(next)})
	return m
}

// visibleTasks returns the tasks the list shows, honoring the
// show_completed preference. The store keeps completed tasks either way.
func (m TaskListModel) visibleTasks() []store.Task {
	if m.cfg.ShowCompletedTasks() {
		return m.state.Tasks
	}
	var out []store.Task
	for _, t := range m.state.Tasks {
		if !t.Complete {
			out = append(out, t)
		}
	}
	return out
}

// selectedTask returns the task under the cursor.
func (m TaskListModel) selectedTask() (store.Task, bool) {
	tasks := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return store.Task{}, false
	}
	return tasks[m.cursor], true
}

// clampCursor keeps the cursor inside the visible list after a task
// disappears from it.
func (m *TaskListModel) clampCursor() {
	last := len(m.visibleTasks()) - 1
	if m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("T I C K D O")
	tagline := styles.SubtleStyle.Render("A to-do list that counts down")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	taglineLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline)

	tasks := m.visibleTasks()

	var bodyLines []string
	if len(tasks) == 0 && m.mode != modeAdding {
		bodyLines = append(bodyLines,
			"No tasks yet.",
			"",
			styles.SubtleStyle.Render("Press 'a' to add your first task."),
		)
	} else {
		for i, t := range tasks {
			bodyLines = append(bodyLines, m.formatTaskLine(i, t))
		}
	}

	if m.mode == modeAdding {
		bodyLines = append(bodyLines, "", m.input.View(), m.renderDurationPicker())
	}

	body := strings.Join(bodyLines, "\n")

	// Vertical layout: title block at top third, status bar at bottom.
	statusBarHeight := 1
	contentHeight := 2 + 2 + len(bodyLines)
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n")
	b.WriteString(taglineLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, m.statusItems()))

	return b.String()
}

// formatTaskLine formats a single task line for display.
func (m TaskListModel) formatTaskLine(index int, t store.Task) string {
	indicator := "○"
	if index == m.cursor && m.mode != modeAdding {
		indicator = "●"
	}

	checkbox := "[ ]"
	if t.Complete {
		checkbox = "[x]"
	}

	// While this task's inline edit form is open, the text column shows
	// the input instead.
	if t.Editing && m.mode == modeEditing && t.ID == m.editID {
		return fmt.Sprintf("%s %s %s", indicator, checkbox, m.input.View())
	}

	text := t.Text
	switch {
	case t.Complete:
		text = styles.CompletedStyle.Render(text)
	case index == m.cursor && m.mode == modeNormal:
		text = styles.SelectedStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %-30s", indicator, checkbox, text)

	if label := store.RemainingLabel(t); label != "" {
		if t.Complete {
			line += "  " + styles.SuccessStyle.Render(label)
		} else {
			line += "  " + styles.SubtleStyle.Render(label)
		}
	} else if t.Expired {
		line += "  " + styles.ExpiredStyle.Render("expired")
	}

	return line
}

// renderDurationPicker renders the duration line of the add form.
func (m TaskListModel) renderDurationPicker() string {
	duration := "no deadline"
	if m.state.PendingDuration > 0 {
		duration = fmt.Sprintf("%d min", m.state.PendingDuration)
	}
	return styles.SubtleStyle.Render("Duration: ") + styles.SelectedStyle.Render(duration) +
		styles.SubtleStyle.Render("  (↑↓ to change)")
}

// statusItems returns the contextual help items for the current mode.
func (m TaskListModel) statusItems() []string {
	switch m.mode {
	case modeAdding:
		return []string{"Enter Add", "↑↓ Duration", "Esc Cancel"}
	case modeEditing:
		return []string{"Enter Save", "Esc Cancel"}
	default:
		return []string{"↑↓ Navigate", "a Add", "e Edit", "Space Toggle", "d Delete", "r Reset timer", "q Quit"}
	}
}

// SetSize updates the model dimensions.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// State returns the current application state.
func (m TaskListModel) State() store.State {
	return m.state
}

// Cursor returns the current cursor position.
func (m TaskListModel) Cursor() int {
	return m.cursor
}
