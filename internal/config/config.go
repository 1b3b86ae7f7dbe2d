// Package config loads the CLI settings from an optional YAML file and
// ARBOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "arbor.yaml"

// EnvPrefix prefixes every environment override, e.g. ARBOR_MAX_DEPTH.
const EnvPrefix = "ARBOR_"

// Output formats understood by the build and graph commands.
const (
	FormatText     = "text"
	FormatMermaid  = "mermaid"
	FormatMarkdown = "markdown"
)

// ErrInvalidConfig is returned when the merged settings fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the CLI settings.
type Config struct {
	MaxDepth int    `yaml:"max_depth" mapstructure:"max_depth"`
	Format   string `yaml:"format" mapstructure:"format"`
	Color    bool   `yaml:"color" mapstructure:"color"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxDepth: 3,
		Format:   FormatText,
		Color:    true,
		LogLevel: "info",
	}
}

// keys lists the settings that may be overridden from the environment.
var keys = []string{"max_depth", "format", "color", "log_level"}

// Load merges defaults, the YAML file at path and the environment, in that order.
// A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (Config, error) {
	raw := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No file: defaults and environment only.
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for _, key := range keys {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = v
		}
	}

	return Decode(raw)
}

// Decode applies raw on top of the defaults. String values are converted
// to the field types, so environment values can be used as-is.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges of the settings.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	switch c.Format {
	case FormatText, FormatMermaid, FormatMarkdown:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}
