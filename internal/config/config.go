package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokercrossword/internal/util"
	"pokercrossword/pkg/crossword"
	"pokercrossword/pkg/poker"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for the poker crossword generator
type Config struct {
	loaded    bool
	Rows      int      `yaml:"rows" envconfig:"rows"`
	Strengths []string `yaml:"strengths" envconfig:"strengths"`
	Seed      int64    `yaml:"seed" envconfig:"seed"`
	Puzzles   int      `yaml:"puzzles" envconfig:"puzzles"`
	Workers   int      `yaml:"workers" envconfig:"workers"`
	Log       struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Output struct {
		Color bool `yaml:"color" envconfig:"color"`
		JSON  bool `yaml:"json" envconfig:"json"`
	} `yaml:"output"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Rows: 5,
		Strengths: []string{
			poker.StraightFlush.String(),
			poker.FourOfAKind.String(),
			poker.Flush.String(),
			poker.FullHouse.String(),
			poker.Straight.String(),
		},
		Puzzles: 1,
		Workers: 4,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Output.Color = true

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are overridden by the YAML file in PCW_CONFIG_FILE (config.yaml if unset), which
// in turn is overridden by PCW_* environment variables. A missing config.yaml is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PCW_CONFIG_FILE", defaultConfigFile)
	if err := decodeFile(configFile, &cfg); err != nil {
		if !(errors.Is(err, os.ErrNotExist) && configFile == defaultConfigFile) {
			return err
		}
	}

	if err := envconfig.Process("pcw", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func decodeFile(filename string, cfg *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("could not decode %s: %w", filename, err)
	}

	return nil
}

// Validate ensures the configuration can be used to build puzzles
func (c Config) Validate() error {
	if c.Rows < 1 || c.Rows > crossword.MaxRows {
		return fmt.Errorf("%w, got %d", crossword.ErrInvalidRows, c.Rows)
	}

	if c.Puzzles < 1 {
		return fmt.Errorf("puzzles must be at least 1, got %d", c.Puzzles)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if _, err := c.HandStrengths(); err != nil {
		return err
	}

	return nil
}

// HandStrengths parses the configured target strengths
func (c Config) HandStrengths() ([]poker.HandStrength, error) {
	if len(c.Strengths) == 0 {
		return nil, crossword.ErrNoStrengths
	}

	strengths := make([]poker.HandStrength, len(c.Strengths))
	for i, name := range c.Strengths {
		s, err := poker.ParseHandStrength(name)
		if err != nil {
			return nil, err
		}

		strengths[i] = s
	}

	return strengths, nil
}
