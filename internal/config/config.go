// Package config loads the zeppelin CLI configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the zeppelin CLI configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Embedding EmbeddingConfig `yaml:"embedding"`
}

// ServerConfig holds the connection settings for a Zeppelin server.
type ServerConfig struct {
	BaseURL    string            `yaml:"base_url"`
	TimeoutSec int               `yaml:"timeout_sec"`
	Headers    map[string]string `yaml:"headers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// EmbeddingConfig holds optional embedding provider settings for QueryText.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// Timeout returns the configured request timeout.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// Load reads configuration from path (optional) and applies environment
// overrides: ZEPPELIN_BASE_URL, ZEPPELIN_TIMEOUT_SEC, ZEPPELIN_LOG_LEVEL.
func Load(path string) (Config, error) {
	cfg := Config{
		Server:  ServerConfig{BaseURL: "http://localhost:8080", TimeoutSec: 30},
		Logging: LoggingConfig{Level: "info"},
	}

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("ZEPPELIN_BASE_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("ZEPPELIN_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ZEPPELIN_TIMEOUT_SEC %q: %w", v, err)
		}
		cfg.Server.TimeoutSec = sec
	}
	if v := os.Getenv("ZEPPELIN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if cfg.Server.TimeoutSec <= 0 {
		return Config{}, fmt.Errorf("timeout_sec must be positive, got %d", cfg.Server.TimeoutSec)
	}
	return cfg, nil
}
