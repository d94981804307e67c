// Package config loads optional user preferences for the TUI. Task
// data itself is never persisted; the preferences file only shapes how
// the list behaves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Defaults applied when the preferences file is absent or fields are unset.
const (
	DefaultDurationMinutes = 0
	DefaultMaxDuration     = 15
)

// ErrInvalid marks a preferences file that parsed but failed validation.
var ErrInvalid = errors.New("invalid config")

// Config holds user preferences.
type Config struct {
	// DefaultDuration is preselected in the add form, in minutes.
	DefaultDuration int `yaml:"default_duration"`

	// MaxDuration bounds the duration picker. 0 means unset.
	MaxDuration int `yaml:"max_duration,omitempty"`

	// ShowCompleted controls whether completed tasks stay visible in
	// the list. nil means unset (show them).
	ShowCompleted *bool `yaml:"show_completed,omitempty"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		DefaultDuration: DefaultDurationMinutes,
		MaxDuration:     DefaultMaxDuration,
	}
}

// ShowCompletedTasks returns whether completed tasks should stay
// visible. Defaults to true when unset.
func (c *Config) ShowCompletedTasks() bool {
	if c.ShowCompleted == nil {
		return true
	}
	return *c.ShowCompleted
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.MaxDuration < 1 {
		return fmt.Errorf("%w: max_duration must be >= 1", ErrInvalid)
	}
	if c.DefaultDuration < 0 {
		return fmt.Errorf("%w: default_duration must be >= 0", ErrInvalid)
	}
	if c.DefaultDuration > c.MaxDuration {
		return fmt.Errorf("%w: default_duration %d exceeds max_duration %d",
			ErrInvalid, c.DefaultDuration, c.MaxDuration)
	}
	return nil
}

// DefaultPath returns the canonical preferences file location, or ""
// when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tickdo", "config.yml")
}

// Load reads and validates the preferences file at path. A missing
// file (or an empty path) yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return NewDefault(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.MaxDuration == 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
