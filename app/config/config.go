package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user settings shared by the keycalc front ends.
type Config struct {
	LogLevel string  `json:"log_level"`
	LogFile  string  `json:"log_file,omitempty"`
	TapeFile string  `json:"tape_file,omitempty"` // where the CLI writes the tape, "" for none
	TextSize float32 `json:"text_size"`           // GUI text size in sp
	Color    string  `json:"color"`               // "auto", "always" or "never"
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		TextSize: 20,
		Color:    ColorAuto,
	}
}

// DefaultPath returns <UserConfigDir>/keycalc/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "keycalc", "config.json")
}

// DefaultLogPath returns <UserCacheDir>/keycalc/keycalc.log.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "keycalc", "keycalc.log")
}

// Load reads the config at path, or DefaultPath() when path is empty.
// A missing file yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes and checks field values.
func (c *Config) Validate() error {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.TextSize <= 0 {
		c.TextSize = Default().TextSize
	}
	if c.TextSize < 8 || c.TextSize > 48 {
		return fmt.Errorf("text_size must be between 8 and 48, got %v", c.TextSize)
	}
	return nil
}

// Save writes the config as indented JSON, creating parent directories.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
