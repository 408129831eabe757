package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir    string        `yaml:"data_dir" env:"UNDERWRITE_DATA_DIR"`
	OutputDir  string        `yaml:"output_dir" env:"UNDERWRITE_OUTPUT_DIR"`
	OutputFile string        `yaml:"output_file" env:"UNDERWRITE_OUTPUT_FILE"`
	Logging    LoggingConfig `yaml:"logging"`
	Batches    int           `yaml:"batches" env:"UNDERWRITE_BATCHES"`
	BatchSize  int           `yaml:"batch_size" env:"UNDERWRITE_BATCH_SIZE"`
	// Seed drives the dataset generator. Zero picks a random seed per run.
	Seed int64 `yaml:"seed" env:"UNDERWRITE_SEED"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" env:"UNDERWRITE_LOG_LEVEL"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Load reads the YAML config at path, applies environment overrides and validates it.
// Keys missing from the file keep their default values.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return finish(config)
}

// FromEnv returns the default config with environment overrides applied
func FromEnv() (*Config, error) {
	return finish(DefaultConfig())
}

func finish(config *Config) (*Config, error) {
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required and cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is required and cannot be empty")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("output_file is required and cannot be empty")
	}
	if filepath.Base(c.OutputFile) != c.OutputFile {
		return fmt.Errorf("output_file '%s' must be a file name, not a path", c.OutputFile)
	}
	if c.Batches < 1 {
		return fmt.Errorf("batches must be at least 1, got %d", c.Batches)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", c.BatchSize)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	return nil
}

// Validate checks the log level and rotation settings
func (l *LoggingConfig) Validate() error {
	if _, err := l.ZerologLevel(); err != nil {
		return err
	}
	if l.MaxSize < 0 || l.MaxBackups < 0 || l.MaxAge < 0 {
		return errors.New("max_size, max_backups and max_age cannot be negative")
	}
	return nil
}

// ZerologLevel parses Level. An empty level means info.
func (l *LoggingConfig) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s': %w", l.Level, err)
	}
	return level, nil
}

// OutputPath is the full path of the decision results file
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}
