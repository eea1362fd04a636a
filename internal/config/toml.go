// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Timer    TimerConfig    `toml:"timer"`
	History  HistoryConfig  `toml:"history"`
	Scramble ScrambleConfig `toml:"scramble"`
}

// TimerConfig maps timer and redraw settings.
type TimerConfig struct {
	TickMs *int `toml:"tick-ms"`
}

// HistoryConfig maps solve history settings.
type HistoryConfig struct {
	Path *string `toml:"path"`
}

// ScrambleConfig maps scramble generation settings.
type ScrambleConfig struct {
	Length *int `toml:"length"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
