package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.DefaultDuration != DefaultDurationMinutes {
		t.Errorf("expected default duration %d, got %d", DefaultDurationMinutes, cfg.DefaultDuration)
	}
	if cfg.MaxDuration != DefaultMaxDuration {
		t.Errorf("expected max duration %d, got %d", DefaultMaxDuration, cfg.MaxDuration)
	}
	if !cfg.ShowCompletedTasks() {
		t.Error("expected completed tasks shown by default")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.MaxDuration != DefaultMaxDuration {
		t.Errorf("expected max duration %d, got %d", DefaultMaxDuration, cfg.MaxDuration)
	}
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected defaults for empty path, got error: %v", err)
	}
	if cfg.DefaultDuration != DefaultDurationMinutes {
		t.Errorf("expected default duration %d, got %d", DefaultDurationMinutes, cfg.DefaultDuration)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, "default_duration: 5\nmax_duration: 30\nshow_completed: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultDuration != 5 {
		t.Errorf("expected default duration 5, got %d", cfg.DefaultDuration)
	}
	if cfg.MaxDuration != 30 {
		t.Errorf("expected max duration 30, got %d", cfg.MaxDuration)
	}
	if cfg.ShowCompletedTasks() {
		t.Error("expected completed tasks hidden")
	}
}

func TestLoad_UnsetMaxDurationFallsBack(t *testing.T) {
	path := writeConfig(t, "default_duration: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxDuration != DefaultMaxDuration {
		t.Errorf("expected max duration %d, got %d", DefaultMaxDuration, cfg.MaxDuration)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "default_duration: [oops\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative default", "default_duration: -1\n"},
		{"default exceeds max", "default_duration: 20\nmax_duration: 15\n"},
		{"negative max", "max_duration: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
