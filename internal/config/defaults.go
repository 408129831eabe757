package config

import (
	"fmt"

	"github.com/wizzomafizzo/underwrite/internal/constants"
	"gopkg.in/yaml.v3"
)

const (
	defaultBatches   = 10
	defaultBatchSize = 10000
)

// DefaultConfig returns the default underwrite configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:    constants.DefaultDataDir,
		OutputDir:  constants.DefaultOutputDir,
		OutputFile: constants.DefaultOutputFilename,
		Batches:    defaultBatches,
		BatchSize:  defaultBatchSize,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
