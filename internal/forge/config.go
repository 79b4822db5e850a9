package forge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrodier/hintforge/internal/util"
)

// Config represents a generation run for YAML serialization.
type Config struct {
	Count     int    `yaml:"count"`
	Shape     string `yaml:"shape"` // "BxCxHxW"
	OutputDir string `yaml:"output_dir"`
	Seed      uint64 `yaml:"seed"`
	Workers   int    `yaml:"workers"`
	Scale     int    `yaml:"scale"`
	Annotate  bool   `yaml:"annotate"`
}

// LoadConfig reads a YAML run configuration from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes a YAML run configuration to path.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ToOptions converts a configuration into validated generation options.
func (c Config) ToOptions() (Options, error) {
	shape, err := util.ParseShape(c.Shape)
	if err != nil {
		return Options{}, fmt.Errorf("config shape: %w", err)
	}
	return Options{
		Count:     c.Count,
		Shape:     shape,
		OutputDir: c.OutputDir,
		Seed:      c.Seed,
		Workers:   c.Workers,
		Scale:     c.Scale,
		Annotate:  c.Annotate,
	}, nil
}

// FromOptions converts generation options back into a serializable
// configuration.
func FromOptions(opts Options) Config {
	return Config{
		Count:     opts.Count,
		Shape:     opts.Shape.String(),
		OutputDir: opts.OutputDir,
		Seed:      opts.Seed,
		Workers:   opts.Workers,
		Scale:     opts.Scale,
		Annotate:  opts.Annotate,
	}
}
