// Package config handles loading and saving gantry configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/gantry/config.yaml
//   - State:   ~/.local/state/gantry/ (last-used export options)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/gantry/pkg/theme"
	"github.com/vanderheijden86/gantry/pkg/timescale"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	DefaultMode string `yaml:"default_mode,omitempty"` // day, month, week-part
}

// Config is the top-level configuration for gantry.
type Config struct {
	UI    UIConfig    `yaml:"ui,omitempty"`
	Theme theme.Theme `yaml:"theme,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI:    UIConfig{DefaultMode: string(timescale.ModeMonth)},
		Theme: theme.Default(),
	}
}

// Mode returns the configured default view mode, falling back to month
// for unknown values so a hand-edited config never breaks startup.
func (c Config) Mode() timescale.Mode {
	switch m := timescale.Mode(c.UI.DefaultMode); m {
	case timescale.ModeDay, timescale.ModeMonth, timescale.ModeWeekPart:
		return m
	default:
		return timescale.ModeMonth
	}
}

// ConfigDir returns the XDG config directory for gantry.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gantry")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gantry")
}

// StateDir returns the XDG state directory for gantry.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "gantry")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "gantry")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
