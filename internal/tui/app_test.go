package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/tickdo/internal/config"
)

func TestNewModel(t *testing.T) {
	m := NewModel(config.NewDefault())

	if m.width != 0 || m.height != 0 {
		t.Errorf("expected zero size before first WindowSizeMsg, got %dx%d", m.width, m.height)
	}
}

func TestModel_Init_ArmsTimer(t *testing.T) {
	m := NewModel(config.NewDefault())

	if m.Init() == nil {
		t.Error("expected Init to arm the tick timer")
	}
}

func TestModel_Update_WindowSizeMsg(t *testing.T) {
	m := NewModel(config.NewDefault())

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("expected no command from WindowSizeMsg")
	}

	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	if model.width != 80 || model.height != 24 {
		t.Errorf("expected 80x24, got %dx%d", model.width, model.height)
	}
	if !strings.Contains(model.View(), "T I C K D O") {
		t.Error("expected view to render once sized")
	}
}

func TestModel_Update_DelegatesQuit(t *testing.T) {
	m := NewModel(config.NewDefault())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected command from Ctrl+C")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}
