package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the batch evaluation and logging layers.
// The density functions themselves take no configuration.
type Config struct {
	Batch   BatchConfig
	Logging LogConfig
}

// BatchConfig holds batch evaluation settings.
type BatchConfig struct {
	// TableSize bounds the memo table per evaluation; 0 disables memoization.
	TableSize  uint32 `split_words:"true" default:"0"`
	NumWorkers int    `split_words:"true" default:"4"`
	ChunkSize  int    `split_words:"true" default:"1024"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	BufferSize  int    `split_words:"true" default:"16"`
	Level       string `default:"info"`
	Development bool   `default:"false"`
}

// Load loads configuration from CAUCHY_BATCH_* and CAUCHY_LOGGING_*
// environment variables, see keys.go.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Batch: BatchConfig{
			TableSize:  0,
			NumWorkers: 4,
			ChunkSize:  1024,
		},
		Logging: LogConfig{
			BufferSize:  16,
			Level:       "info",
			Development: false,
		},
	}
}

func (c *Config) Validate() error {
	if err := c.Batch.Validate(); err != nil {
		return err
	}
	if c.Logging.BufferSize < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, EnvLogBufferSize, c.Logging.BufferSize)
	}
	return nil
}

func (c BatchConfig) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, EnvNumWorkers, c.NumWorkers)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, EnvChunkSize, c.ChunkSize)
	}
	return nil
}
