// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Writing WritingConfig `toml:"writing"`
}

// WritingConfig maps writing-related settings. Values seed preferences on
// first run; the persisted preferences win afterwards.
type WritingConfig struct {
	SessionGoal   *int  `toml:"session-goal"`
	AutoSave      *bool `toml:"auto-save"`
	ShowWordCount *bool `toml:"show-word-count"`
	DarkMode      *bool `toml:"dark-mode"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
