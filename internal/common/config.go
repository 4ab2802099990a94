// Package common provides shared utilities for the note generator
package common

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the note generator
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Upload      UploadConfig  `toml:"upload"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds template store configuration.
type StorageConfig struct {
	Path string `toml:"path"` // directory holding template.txt and quick-templates.json
}

// UploadConfig holds document upload configuration.
type UploadConfig struct {
	MaxSizeMB     int     `toml:"max_size_mb"`     // multipart upload limit
	RatePerSecond float64 `toml:"rate_per_second"` // upload rate limit
	Burst         int     `toml:"burst"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3002,
		},
		Storage: StorageConfig{
			Path: "data",
		},
		Upload: UploadConfig{
			MaxSizeMB:     20,
			RatePerSecond: 1,
			Burst:         3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from TOML files, merging over defaults.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("NOTEGEN_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("NOTEGEN_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("NOTEGEN_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if dir := os.Getenv("NOTEGEN_DATA_DIR"); dir != "" {
		config.Storage.Path = dir
	}

	if level := os.Getenv("NOTEGEN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
