// Package tui implements the terminal UI for tickdo.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/tickdo/internal/config"
	"github.com/pablasso/tickdo/internal/tui/views"
)

// Model is the main Bubble Tea model. The task list is the only view;
// the root model forwards size changes and delegates everything else.
type Model struct {
	list   views.TaskListModel
	width  int
	height int
}

// Run starts the TUI application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the root model.
func NewModel(cfg *config.Config) Model {
	return Model{list: views.NewTaskListModel(cfg)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.list.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.list.SetSize(size.Width, size.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.list.View()
}
