// Package config loads runtime settings from defaults, an optional
// YAML file at ~/.config/deskpilot/config.yaml, and DESKPILOT_*
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/plan"
)

// Config holds the tunables shared by the CLI commands and the session.
type Config struct {
	PlannerURL     string        `yaml:"planner_url"`
	PlannerTimeout time.Duration `yaml:"planner_timeout"`
	SnapshotLimit  int           `yaml:"snapshot_limit"`
	SnapshotDepth  int           `yaml:"snapshot_depth"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PlannerURL:     plan.DefaultURL,
		PlannerTimeout: plan.DefaultTimeout,
		SnapshotLimit:  ax.DefaultCaptureLimit,
		SnapshotDepth:  ax.DefaultCaptureDepth,
		LogLevel:       "info",
	}
}

// Path returns the config file location, or "" when the home directory
// cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "deskpilot", "config.yaml")
}

// Load builds the effective configuration. A missing config file is
// not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()
	if p := Path(); p != "" {
		if err := loadFile(&cfg, p); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("DESKPILOT_PLANNER_URL"); v != "" {
		cfg.PlannerURL = v
	}
	if v := getenv("DESKPILOT_PLANNER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse DESKPILOT_PLANNER_TIMEOUT %q: %w", v, err)
		}
		cfg.PlannerTimeout = d
	}
	if v := getenv("DESKPILOT_SNAPSHOT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse DESKPILOT_SNAPSHOT_LIMIT %q: %w", v, err)
		}
		cfg.SnapshotLimit = n
	}
	if v := getenv("DESKPILOT_SNAPSHOT_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse DESKPILOT_SNAPSHOT_DEPTH %q: %w", v, err)
		}
		cfg.SnapshotDepth = n
	}
	if v := getenv("DESKPILOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
