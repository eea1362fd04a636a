package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Timer.TickMs != nil || cfg.History.Path != nil || cfg.Scramble.Length != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[timer]\ntick-ms = 50\n\n[history]\npath = \"/tmp/times.txt\"\n\n[scramble]\nlength = 25\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Timer.TickMs == nil || *cfg.Timer.TickMs != 50 {
		t.Fatalf("unexpected tick-ms: %v", cfg.Timer.TickMs)
	}
	if cfg.History.Path == nil || *cfg.History.Path != "/tmp/times.txt" {
		t.Fatalf("unexpected history path: %v", cfg.History.Path)
	}
	if cfg.Scramble.Length == nil || *cfg.Scramble.Length != 25 {
		t.Fatalf("unexpected scramble length: %v", cfg.Scramble.Length)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[timer]\ntick = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "timer.tick") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tuicube", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultHistoryPath(); got != filepath.Join("/data", "tuicube", "times.txt") {
		t.Fatalf("unexpected history path: %s", got)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
