package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ZEPPELIN_BASE_URL", "")
	t.Setenv("ZEPPELIN_TIMEOUT_SEC", "")
	t.Setenv("ZEPPELIN_LOG_LEVEL", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSec != 30 {
		t.Errorf("TimeoutSec = %d", cfg.Server.TimeoutSec)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: https://zeppelin.internal:9443
  timeout_sec: 5
  headers:
    X-Api-Key: secret
logging:
  level: debug
embedding:
  api_key: sk-test
  model: text-embedding-3-small
  dimensions: 256
`)
	clearEnv(t)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "https://zeppelin.internal:9443" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout() != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Server.Timeout())
	}
	if cfg.Server.Headers["X-Api-Key"] != "secret" {
		t.Errorf("Headers = %v", cfg.Server.Headers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Embedding.APIKey != "sk-test" || cfg.Embedding.Dimensions != 256 {
		t.Errorf("Embedding = %+v", cfg.Embedding)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  base_url: http://from-file:8080
`)
	t.Setenv("ZEPPELIN_BASE_URL", "http://from-env:9090")
	t.Setenv("ZEPPELIN_TIMEOUT_SEC", "60")
	t.Setenv("ZEPPELIN_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://from-env:9090" {
		t.Errorf("BaseURL = %q, env should win", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSec != 60 {
		t.Errorf("TimeoutSec = %d", cfg.Server.TimeoutSec)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	t.Setenv("ZEPPELIN_TIMEOUT_SEC", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric timeout")
	}
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	path := writeConfig(t, `
server:
  timeout_sec: -1
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a: map")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
