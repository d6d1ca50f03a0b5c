// Package config handles loading and saving wt configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/wt/config.yaml
//   - State:   ~/.local/state/wt/ (debug log)
//
// Walkthrough progress is never stored here; it lives only for the length
// of a session.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "wt"

// Layout values for UIConfig.Layout.
const (
	LayoutAuto    = "auto"
	LayoutColumns = "columns"
	LayoutStacked = "stacked"
)

// ConsoleMinHeight is the smallest console viewport a positive
// console_height may ask for. Zero means "fit the whole log".
const ConsoleMinHeight = 3

// UIConfig holds UI preference settings.
type UIConfig struct {
	Animations    bool   `yaml:"animations"`               // false settles every transition instantly
	Mouse         bool   `yaml:"mouse"`                    // Enable clicking progress markers
	Layout        string `yaml:"layout,omitempty"`         // auto, columns, stacked
	ConsoleHeight int    `yaml:"console_height,omitempty"` // Visible console lines, 0 fits the log
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	LogFile string `yaml:"log_file,omitempty"`
}

// Config is the top-level configuration for wt.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Debug DebugConfig `yaml:"debug,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Animations:    true,
			Mouse:         true,
			Layout:        LayoutAuto,
			ConsoleHeight: 0,
		},
	}
}

// ConfigDir returns the XDG config directory for wt.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the XDG state directory for wt.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DebugLogPath returns the debug log location, honoring debug.log_file.
func (c Config) DebugLogPath() string {
	if c.Debug.LogFile != "" {
		return c.Debug.LogFile
	}
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "debug.log")
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
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	cfg.Debug.LogFile = expandHome(cfg.Debug.LogFile)

	return cfg, nil
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	switch strings.ToLower(strings.TrimSpace(c.UI.Layout)) {
	case LayoutColumns:
		c.UI.Layout = LayoutColumns
	case LayoutStacked:
		c.UI.Layout = LayoutStacked
	default:
		c.UI.Layout = LayoutAuto
	}
	switch {
	case c.UI.ConsoleHeight < 0:
		c.UI.ConsoleHeight = 0
	case c.UI.ConsoleHeight > 0 && c.UI.ConsoleHeight < ConsoleMinHeight:
		c.UI.ConsoleHeight = ConsoleMinHeight
	}
}

// ApplyEnv overlays environment overrides:
//
//	WT_REDUCED_MOTION=1   disables animations
//	WT_NO_MOUSE=1         disables mouse input
func (c *Config) ApplyEnv() {
	if envBool("WT_REDUCED_MOTION") {
		c.UI.Animations = false
	}
	if envBool("WT_NO_MOUSE") {
		c.UI.Mouse = false
	}
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

func envBool(name string) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true
	default:
		return false
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
