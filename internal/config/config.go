package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file name.
const FileName = "proforma.yaml"

// Config represents the top-level proforma.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Compare    CompareConfig    `yaml:"compare"`
}

// BusinessConfig identifies the modeled entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// EvaluationConfig controls the balance identity check.
type EvaluationConfig struct {
	// Tolerance is the largest |assets - liabilities - equity| accepted
	// before an evaluation fails.
	Tolerance float64 `yaml:"tolerance"`
}

// CompareConfig controls which diff rows get flagged.
type CompareConfig struct {
	ThresholdAmount  *float64 `yaml:"threshold_amount,omitempty"`
	ThresholdPercent *float64 `yaml:"threshold_percent,omitempty"`
}

// Load reads a proforma.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Evaluation: EvaluationConfig{
			Tolerance: 0.01,
		},
	}
}
