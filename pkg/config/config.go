// Package config loads the raceway-check run configuration.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/logging"
	"github.com/dd0wney/cluso-raceway/pkg/parallel"
	"github.com/dd0wney/cluso-raceway/pkg/validation"
)

// EnvLogLevel overrides LogLevel when set.
const EnvLogLevel = "LOG_LEVEL"

// Config is the run configuration
type Config struct {
	// Workers is the size of the validation worker pool
	Workers int `yaml:"workers"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// Constraints names the path constraints applied to every cable, in order.
	// Empty means unconstrained reachability.
	Constraints []string `yaml:"constraints"`
	// LibraryFile is an optional YAML file of conductor and conduit overrides
	LibraryFile string `yaml:"library_file"`
	// Color enables terminal styling in the text report
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Workers:  min(runtime.NumCPU(), parallel.MaxWorkers),
		LogLevel: "info",
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		RangeInt("Workers", c.Workers, 1, parallel.MaxWorkers).
		Required("LogLevel", c.LogLevel).
		When(strings.TrimSpace(c.LogLevel) != "", func(cv *validation.ConfigValidator) {
			cv.OneOf("LogLevel", c.LogLevel, logging.LevelNames)
		}).
		Each("Constraints", c.Constraints, func(name string) error {
			_, err := constraints.FromNames([]string{name})
			return err
		}).
		When(c.LibraryFile != "", func(cv *validation.ConfigValidator) {
			cv.Custom("LibraryFile", func() error {
				_, err := os.Stat(c.LibraryFile)
				return err
			})
		}).
		Validate()
}

// LoadFromFile loads configuration from a YAML file over the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	c.Workers = validation.DefaultOrInt(other.Workers, c.Workers)
	c.LogLevel = validation.DefaultOr(other.LogLevel, c.LogLevel)
	c.LibraryFile = validation.DefaultOr(other.LibraryFile, c.LibraryFile)
	if len(other.Constraints) > 0 {
		c.Constraints = append([]string(nil), other.Constraints...)
	}
	if other.Color {
		c.Color = true
	}
}

// Load builds the effective configuration: defaults, then the file at path
// (if any), then the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// Constraint builds the configured composite path constraint. An empty list
// yields an empty composite, which allows every edge.
func (c *Config) Constraint() (*constraints.Composite, error) {
	return constraints.FromNames(c.Constraints)
}
