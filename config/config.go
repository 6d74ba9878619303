// Package config loads bfsroute settings: built-in defaults, then an
// optional YAML file, then BFSROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bfsroute/dataset"
)

// Environment variables consulted by Load.
const (
	EnvStart    = "BFSROUTE_START"
	EnvGoal     = "BFSROUTE_GOAL"
	EnvLogLevel = "BFSROUTE_LOG_LEVEL"
	EnvNoColor  = "BFSROUTE_NO_COLOR"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the driver settings.
type Config struct {
	Start    string `yaml:"start"`
	Goal     string `yaml:"goal"`
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	MaxDepth int    `yaml:"max_depth"`
}

// Default returns the settings that reproduce the built-in example search.
func Default() Config {
	return Config{
		Start:    dataset.DefaultStart,
		Goal:     dataset.DefaultGoal,
		Color:    true,
		LogLevel: "warn",
	}
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Read merges defaults, the YAML file at path (skipped when path is empty
// or the file does not exist) and the environment, without validating the
// result. Callers that layer further overrides on top validate afterwards.
// Only malformed input fails: bad YAML, or a BFSROUTE_NO_COLOR that is not
// a boolean.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvStart); v != "" {
		cfg.Start = v
	}
	if v := os.Getenv(EnvGoal); v != "" {
		cfg.Goal = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvNoColor, v)
		}
		cfg.Color = !b
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Start) == "" {
		return fmt.Errorf("%w: start is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.Goal) == "" {
		return fmt.Errorf("%w: goal is empty", ErrInvalid)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth cannot be negative (%d)", ErrInvalid, c.MaxDepth)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level named by LogLevel; Validate guarantees it parses.
func (c Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}

	return lvl, nil
}
