// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ISG ISGConfig `yaml:"isg"`
}

// ---- DEVICE ----

type ISGConfig struct {
	Name string `yaml:"name"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Poll cadence and per-request timeout.
	ScanIntervalS int `yaml:"scan_interval_s"`
	TimeoutMs     int `yaml:"timeout_ms"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// ---- METRICS ----

type MetricsConfig struct {
	// Listen is the address the Prometheus endpoint binds to.
	// Empty disables the endpoint.
	Listen string `yaml:"listen"`
}

// Load reads and parses a YAML configuration file. Validation and
// normalization are separate, explicit steps.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
