// Package config loads and saves reflow's flat JSON configuration file:
// a plain struct, an os.UserHomeDir-rooted default path, and explicit
// Load/Save functions with no framework in between.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is reflow's on-disk configuration.
type Config struct {
	// DatabasePath is where the sqlite audit trail lives.
	DatabasePath string `json:"database_path"`
	// ScenarioDir is where scenario JSON files are read from and written to.
	ScenarioDir string `json:"scenario_dir"`
	// WorkCenterDir is where Work Center YAML definitions live.
	WorkCenterDir string `json:"work_center_dir"`
	// IterateToFixpoint is stored alongside the other settings but is not
	// read by the CLI: the reflow command's --fixpoint flag (default false)
	// alone sets reflow.Options.IterateToFixpoint.
	IterateToFixpoint bool `json:"iterate_to_fixpoint"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`
}

// Default returns the configuration used when no config file exists yet.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	root := filepath.Join(home, ".reflow")
	return Config{
		DatabasePath:      filepath.Join(root, "reflow.db"),
		ScenarioDir:       filepath.Join(root, "scenarios"),
		WorkCenterDir:     filepath.Join(root, "work_centers"),
		IterateToFixpoint: false,
		LogLevel:          "info",
	}
}

// DefaultPath returns the conventional location of the config file itself.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".reflow", "config.json")
}

// Load reads and parses the config file at path. A missing file is not an
// error: it yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
