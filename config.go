package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default paths used when the config file does not override them.
const (
	DefaultInput  = "eng.tsv"
	DefaultOutput = "prolog_database.json"
)

// Config holds the run configuration for the builder command.
type Config struct {
	// Input is the path to the TSV lexicon.
	Input string `yaml:"input"`
	// Output is the path the JSON database is written to.
	Output string `yaml:"output"`
}

// LoadConfig reads a YAML config file. The file is optional: when it
// does not exist the defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Input: DefaultInput, Output: DefaultOutput}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}
