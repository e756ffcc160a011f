package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults the rbtree command reads from its --config file.
// Flags given on the command line take precedence.
//
// Example YAML file:
//
//	log:
//	  json: true
//	  level: debug
//	stress:
//	  trees: 8
//	  ops: 50000
//	  keys: uuid
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Stress StressConfig `yaml:"stress"`
}

// LogConfig selects the log format and minimum level. Unset fields leave the
// LOG_JSON and LOG_LEVEL environment settings in effect.
type LogConfig struct {
	JSON  *bool  `yaml:"json"`
	Level string `yaml:"level"`
}

// StressConfig describes a randomized workload run by the stress command.
type StressConfig struct {
	Trees       int    `yaml:"trees"`
	Ops         int    `yaml:"ops"`
	Seed        uint64 `yaml:"seed"`
	Keys        string `yaml:"keys"`
	KeySpace    int    `yaml:"key_space"` //nolint:tagliatelle
	Workers     int    `yaml:"workers"`
	MetricsAddr string `yaml:"metrics_addr"` //nolint:tagliatelle
}

const (
	keysInt  = "int"
	keysUUID = "uuid"
)

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Stress: StressConfig{
			Trees:    4,
			Ops:      10000,
			Seed:     1,
			Keys:     keysInt,
			KeySpace: 512,
			Workers:  4,
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(bts, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}
