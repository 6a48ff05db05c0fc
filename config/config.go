package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadInput flags a config value outside its valid range.
var ErrBadInput = errors.New("config: bad input")

// Config holds everything an alignment run needs beyond the text/audio
// file lists themselves.
type Config struct {
	SkipPenalty float64 `yaml:"skip_penalty"`
	Radius      int     `yaml:"radius"`

	WindowSeconds float64 `yaml:"window_seconds"`
	NumFilters    int     `yaml:"num_filters"`
	NumCoefs      int     `yaml:"num_coefs"`

	OutputFormat    string `yaml:"output_format"` // "smil" or "json"
	TimesAsDuration bool   `yaml:"times_as_duration"`
}

// DefaultConfig mirrors the Core API defaults.
func DefaultConfig() Config {
	return Config{
		SkipPenalty:     0.75,
		Radius:          100,
		WindowSeconds:   0.100,
		NumFilters:      26,
		NumCoefs:        13,
		OutputFormat:    "smil",
		TimesAsDuration: false,
	}
}

// Validate checks that every field is within range.
func (c Config) Validate() error {
	if c.SkipPenalty < 0 {
		return fmt.Errorf("%w: skip_penalty must be >= 0, got %v", ErrBadInput, c.SkipPenalty)
	}
	if c.Radius < 1 {
		return fmt.Errorf("%w: radius must be >= 1, got %v", ErrBadInput, c.Radius)
	}
	if c.WindowSeconds <= 0 {
		return fmt.Errorf("%w: window_seconds must be > 0, got %v", ErrBadInput, c.WindowSeconds)
	}
	if c.NumFilters < 2 {
		return fmt.Errorf("%w: num_filters must be >= 2, got %v", ErrBadInput, c.NumFilters)
	}
	if c.NumCoefs < 1 || c.NumCoefs > c.NumFilters {
		return fmt.Errorf("%w: num_coefs must be in [1, num_filters], got %v", ErrBadInput, c.NumCoefs)
	}
	if c.OutputFormat != "smil" && c.OutputFormat != "json" {
		return fmt.Errorf("%w: output_format must be smil or json, got %q", ErrBadInput, c.OutputFormat)
	}

	return nil
}

// Load reads a YAML config file, starting from DefaultConfig so that any
// field the file omits keeps its default value.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
