package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"checklist/internal/config"
)

func TestExplicitDirWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.DirEnv, "/tmp/from-env")

	cfg, err := config.New("/tmp/explicit")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != "/tmp/explicit" {
		t.Errorf("Dir = %q, want explicit dir", cfg.Dir)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.DirEnv, "/tmp/from-env")

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != "/tmp/from-env" {
		t.Errorf("Dir = %q, want env dir", cfg.Dir)
	}
}

func TestSettingsFile(t *testing.T) {
	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	t.Setenv(config.DirEnv, "")

	dir := filepath.Join(confHome, config.AppName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	yaml := "data_dir: /tmp/from-yaml\nquiet: true\n"
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != "/tmp/from-yaml" {
		t.Errorf("Dir = %q, want yaml dir", cfg.Dir)
	}
	if !cfg.Quiet {
		t.Error("quiet from settings file not applied")
	}
}

func TestMalformedSettingsIgnored(t *testing.T) {
	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	t.Setenv(config.DirEnv, "")
	t.Setenv("XDG_DATA_HOME", "/tmp/data-home")

	dir := filepath.Join(confHome, config.AppName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("{not yaml: ["), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != filepath.Join("/tmp/data-home", config.AppName) {
		t.Errorf("Dir = %q, want XDG default", cfg.Dir)
	}
	if cfg.Quiet {
		t.Error("malformed settings should not set quiet")
	}
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data-home")
	if got := config.DefaultDataDir(); got != filepath.Join("/tmp/data-home", config.AppName) {
		t.Errorf("DefaultDataDir = %q", got)
	}
}
