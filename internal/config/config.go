// Package config loads the YAML configuration of the build and serve commands.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file used when none is given.
const DefaultFile = "mdcallout.yaml"

const maxWorkers = 64

// Config represents the site build configuration.
type Config struct {
	LogLevel slog.Level   `yaml:"log_level"`
	Input    string       `yaml:"input"`
	Output   string       `yaml:"output"`
	Include  []string     `yaml:"include"`
	Exclude  []string     `yaml:"exclude"`
	Workers  int          `yaml:"workers"`
	Render   RenderConfig `yaml:"render"`
	Serve    ServeConfig  `yaml:"serve"`
}

// RenderConfig holds markdown compiler settings.
type RenderConfig struct {
	HeadingIDs bool `yaml:"heading_ids"`
	Scripts    bool `yaml:"scripts"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port int `yaml:"port"`
}

// Address returns the preview server listen address.
func (c *ServeConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the preview server configuration.
func (c *ServeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Input, validation.Required),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.Include, validation.Required, validation.Each(validation.By(isGlob))),
		validation.Field(&c.Exclude, validation.Each(validation.By(isGlob))),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(maxWorkers)),
	); err != nil {
		return err
	}

	return c.Serve.Validate()
}

func isGlob(value interface{}) error {
	pattern, _ := value.(string)

	if _, err := glob.Compile(pattern, '/'); err != nil {
		return fmt.Errorf("invalid glob %q: %w", pattern, err)
	}

	return nil
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
		Input:    "./docs",
		Output:   "./site",
		Include:  []string{"*.md", "**/*.md"},
		Workers:  4,
		Render: RenderConfig{
			HeadingIDs: true,
		},
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}

// Load reads filename over the defaults, expanding environment variables
// first, and validates the result.
func Load(filename string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is like Load but returns the validated defaults when filename
// does not exist.
func LoadOrDefault(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		cfg := NewDefaultConfig()

		return cfg, cfg.Validate()
	}

	return Load(filename)
}
