// Package config resolves the data directory and optional settings file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "checklist"

	// SettingsFile is the optional settings filename in the config directory.
	SettingsFile = "config.yaml"

	// DirEnv overrides the data directory.
	DirEnv = "CHECKLIST_DIR"
)

// Config holds the resolved data directory and settings.
type Config struct {
	// Dir is the data directory holding the persisted entries.
	Dir string

	// Debug enables diagnostic output on stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// settings mirrors the optional config.yaml.
type settings struct {
	DataDir string `yaml:"data_dir"`
	Quiet   bool   `yaml:"quiet"`
}

// New resolves the configuration. Precedence for the data directory:
// the explicit dir argument (--config flag), the CHECKLIST_DIR environment
// variable, data_dir from config.yaml, then the XDG default. A missing or
// malformed settings file is ignored.
func New(dir string) (*Config, error) {
	s := loadSettings(filepath.Join(DefaultConfigDir(), SettingsFile))

	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		dir = s.DataDir
	}
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{Dir: dir, Quiet: s.Quiet}, nil
}

// DefaultConfigDir returns the settings directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// loadSettings parses the settings file; any failure yields zero settings.
func loadSettings(path string) settings {
	var s settings
	raw, err := os.ReadFile(path)
	if err != nil {
		return settings{}
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return settings{}
	}
	return s
}
