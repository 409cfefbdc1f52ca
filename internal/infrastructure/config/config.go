package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Generator GeneratorConfig `koanf:"generator"`
	Output    OutputConfig    `koanf:"output"`
}

type GeneratorConfig struct {
	EDRCount  int   `koanf:"edr_count" validate:"min=0"`
	NGAVCount int   `koanf:"ngav_count" validate:"min=0"`
	Seed      int64 `koanf:"seed"`
}

type OutputConfig struct {
	Dir string `koanf:"dir" validate:"required"`
}

// Load layers configuration: struct defaults, then an optional YAML file,
// then ALERTGEN_-prefixed environment variables (double underscore nests,
// e.g. ALERTGEN_OUTPUT__DIR -> output.dir).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		Environment: "development",
		LogLevel:    "info",
		Generator: GeneratorConfig{
			EDRCount:  10000,
			NGAVCount: 10000,
		},
		Output: OutputConfig{
			Dir: "fixtures",
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("ALERTGEN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "ALERTGEN_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects malformed settings such as negative record counts.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
