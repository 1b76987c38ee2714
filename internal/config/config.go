// Package config loads and saves the cubecross application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Zero values are filled in from
// Default, so a partial config file is fine.
type Config struct {
	DBPath         string `yaml:"db_path"`
	DefaultPuzzle  string `yaml:"default_puzzle"`
	ScrambleLength int    `yaml:"scramble_length"`
	SolverMode     string `yaml:"solver_mode"`
	Superhuman     bool   `yaml:"superhuman"`
	Color          bool   `yaml:"color"`

	// LastPuzzle is updated by commands as they run, so the next
	// invocation can default to the puzzle used most recently.
	LastPuzzle string `yaml:"last_puzzle,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		DefaultPuzzle:  "default",
		ScrambleLength: 20,
		SolverMode:     "fixed",
		Color:          true,
	}
}

// DefaultPath returns the config file path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubecross")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path, layering it over the defaults. A
// missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.DefaultPuzzle == "" {
		cfg.DefaultPuzzle = Default().DefaultPuzzle
	}
	if cfg.ScrambleLength <= 0 {
		cfg.ScrambleLength = Default().ScrambleLength
	}
	if cfg.SolverMode == "" {
		cfg.SolverMode = Default().SolverMode
	}

	return cfg, nil
}

// LoadDefault loads the config from the default path.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Save writes the config to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
