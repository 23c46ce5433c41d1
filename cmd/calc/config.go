package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls the interactive session. Every field is optional; missing
// fields keep their defaults.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt"`
	// History is the path of the interactive history file.
	History string `yaml:"history"`
	// LogLevel sets the diagnostics level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:   "> ",
		History:  filepath.Join(home, ".calc_history"),
		LogLevel: "warn",
	}
}

// loadConfig reads the YAML config at path, or ~/.calc.yaml when path is
// empty. A missing default file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".calc.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
