// Package config loads cubestate settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubestate"
)

// Defaults for fields the config file omits.
const (
	DefaultListen   = "127.0.0.1:8787"
	DefaultLogLevel = "info"
	dirName         = ".cubestate"
)

// Config is the on-disk configuration shared by every command.
type Config struct {
	ScrambleLength int    `yaml:"scramble_length"`
	Seed           uint64 `yaml:"seed"` // 0 picks a random seed per run
	Policy         string `yaml:"policy"`
	DBPath         string `yaml:"db_path"`
	LogLevel       string `yaml:"log_level"`
	Listen         string `yaml:"listen"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		ScrambleLength: cubestate.DefaultScrambleLength,
		Policy:         cubestate.StrictAxis.String(),
		LogLevel:       DefaultLogLevel,
		Listen:         DefaultListen,
	}
}

// Dir returns ~/.cubestate.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects negative lengths and unknown policies or log levels.
func (c *Config) Validate() error {
	if c.ScrambleLength < 0 {
		return fmt.Errorf("scramble_length must not be negative, got %d", c.ScrambleLength)
	}
	if _, err := c.ScramblePolicy(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// ScramblePolicy parses the policy field.
func (c *Config) ScramblePolicy() (cubestate.Policy, error) {
	return cubestate.ParsePolicy(c.Policy)
}

// ScrambleOptions returns the scrambler options the config selects.
func (c *Config) ScrambleOptions() []cubestate.Option {
	var opts []cubestate.Option
	if p, err := c.ScramblePolicy(); err == nil {
		opts = append(opts, cubestate.WithPolicy(p))
	}
	if c.Seed != 0 {
		opts = append(opts, cubestate.WithSeed(c.Seed))
	}
	return opts
}
