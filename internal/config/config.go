package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeconds      = 60
	DefaultTickInterval = time.Second
	DefaultPeriod       = 2000 * time.Millisecond
	DefaultFPS          = 30
	DefaultEasing       = "fast-out-slow-in"
	DefaultTheme        = "classic"

	maxFPS = 120
)

var ErrInvalidConfig = errors.New("config: invalid value")

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

type Config struct {
	Seconds      int           `yaml:"seconds"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Period       time.Duration `yaml:"period"`
	FPS          int           `yaml:"fps"`
	Easing       string        `yaml:"easing"`
	Theme        string        `yaml:"theme"`
	ResetOnStop  bool          `yaml:"reset_on_stop"`
	Record       bool          `yaml:"record"`
}

func DefaultConfig() *Config {
	return &Config{
		Seconds:      DefaultSeconds,
		TickInterval: DefaultTickInterval,
		Period:       DefaultPeriod,
		FPS:          DefaultFPS,
		Easing:       DefaultEasing,
		Theme:        DefaultTheme,
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks numeric bounds. Theme and easing names are resolved by
// their owning packages.
func (c *Config) Validate() error {
	switch {
	case c.Seconds <= 0:
		return &ValidationError{Field: "seconds", Reason: "must be positive"}
	case c.TickInterval <= 0:
		return &ValidationError{Field: "tick_interval", Reason: "must be positive"}
	case c.Period <= 0:
		return &ValidationError{Field: "period", Reason: "must be positive"}
	case c.FPS <= 0 || c.FPS > maxFPS:
		return &ValidationError{Field: "fps", Reason: fmt.Sprintf("must be in 1..%d", maxFPS)}
	case c.Easing == "":
		return &ValidationError{Field: "easing", Reason: "must not be empty"}
	case c.Theme == "":
		return &ValidationError{Field: "theme", Reason: "must not be empty"}
	}
	return nil
}

// FrameInterval is the delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
