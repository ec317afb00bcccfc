package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("SHELL_GAME_SEED", "")

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("seed: 3\nlog_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig([]string{"-config", path, "-seed", "11"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Seed != 11 {
		t.Errorf("seed = %d, want flag value 11", cfg.Seed)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want file value warn", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("shuffle_steps: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig([]string{"-config", path}); err == nil {
		t.Error("zero shuffle steps accepted")
	}
}
