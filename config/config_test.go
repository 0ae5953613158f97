package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/artpar/artistdesk/config"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 15s

database:
  driver: "sqlite"
  dsn: ":memory:"

auth:
  session_lifetime: 12h
  cookie_secure: true
  bcrypt_cost: 10

logging:
  level: "debug"
  format: "console"
`

	cfg := writeAndLoad(t, content)

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Host = %s, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.DSN != ":memory:" {
		t.Errorf("Database.DSN = %s, want :memory:", cfg.Database.DSN)
	}
	if cfg.Auth.SessionLifetime != 12*time.Hour {
		t.Errorf("Auth.SessionLifetime = %v, want 12h", cfg.Auth.SessionLifetime)
	}
	if !cfg.Auth.CookieSecure {
		t.Error("Auth.CookieSecure = false, want true")
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("Auth.BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := writeAndLoad(t, "{}\n")

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("default Host = %s, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("default ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("default Database.Driver = %s, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "artistdesk.db" {
		t.Errorf("default Database.DSN = %s, want artistdesk.db", cfg.Database.DSN)
	}
	if cfg.Auth.SessionLifetime != 24*time.Hour {
		t.Errorf("default SessionLifetime = %v, want 24h", cfg.Auth.SessionLifetime)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Logging.Level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("default Logging.Format = %s, want json", cfg.Logging.Format)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("default Metrics.Path = %s, want /metrics", cfg.Metrics.Path)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	os.Setenv("TEST_DB_PATH", "/tmp/expanded.db")
	defer os.Unsetenv("TEST_DB_PATH")

	content := `
database:
  dsn: "${TEST_DB_PATH}"
`

	cfg := writeAndLoad(t, content)

	if cfg.Database.DSN != "/tmp/expanded.db" {
		t.Errorf("Database.DSN = %s, want /tmp/expanded.db", cfg.Database.DSN)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	content := `
database:
  driver: "postgres"
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for unsupported database.driver")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	content := `
logging:
  level: "loud"
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid logging.level")
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	content := `
logging:
  format: "xml"
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid logging.format")
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	content := `
auth:
  bcrypt_cost: 99
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for out-of-range bcrypt_cost")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	content := `
server:
  port: 99999
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `
server:
  this is not valid yaml: [
`
	_, err := writeAndLoadErr(t, content)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("ARTISTDESK_SERVER_PORT", "9999")
	os.Setenv("ARTISTDESK_DATABASE_DSN", "/tmp/env-test.db")
	os.Setenv("ARTISTDESK_SESSION_LIFETIME", "2h")
	os.Setenv("ARTISTDESK_LOG_LEVEL", "debug")
	os.Setenv("ARTISTDESK_METRICS_ENABLED", "true")
	defer func() {
		os.Unsetenv("ARTISTDESK_SERVER_PORT")
		os.Unsetenv("ARTISTDESK_DATABASE_DSN")
		os.Unsetenv("ARTISTDESK_SESSION_LIFETIME")
		os.Unsetenv("ARTISTDESK_LOG_LEVEL")
		os.Unsetenv("ARTISTDESK_METRICS_ENABLED")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Database.DSN != "/tmp/env-test.db" {
		t.Errorf("Database.DSN = %s, want /tmp/env-test.db", cfg.Database.DSN)
	}
	if cfg.Auth.SessionLifetime != 2*time.Hour {
		t.Errorf("SessionLifetime = %v, want 2h", cfg.Auth.SessionLifetime)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	os.Setenv("ARTISTDESK_SERVER_PORT", "7777")
	os.Setenv("ARTISTDESK_LOG_LEVEL", "error")
	defer func() {
		os.Unsetenv("ARTISTDESK_SERVER_PORT")
		os.Unsetenv("ARTISTDESK_LOG_LEVEL")
	}()

	content := `
server:
  port: 8080
database:
  dsn: "file-config.db"
logging:
  level: "info"
`

	cfg := writeAndLoad(t, content)

	// Env should override file
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %s, want error (env override)", cfg.Logging.Level)
	}
	// File value should still be used for non-overridden
	if cfg.Database.DSN != "file-config.db" {
		t.Errorf("Database.DSN = %s, want file-config.db", cfg.Database.DSN)
	}
}

func TestLoadWithFallback_FileExists(t *testing.T) {
	content := `
database:
  dsn: "file-config.db"
`

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadWithFallback(path)
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}

	if cfg.Database.DSN != "file-config.db" {
		t.Errorf("Database.DSN = %s, want file-config.db", cfg.Database.DSN)
	}
}

func TestLoadWithFallback_MissingFile(t *testing.T) {
	os.Setenv("ARTISTDESK_DATABASE_DSN", "/tmp/env-fallback.db")
	defer os.Unsetenv("ARTISTDESK_DATABASE_DSN")

	cfg, err := config.LoadWithFallback("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("LoadWithFallback error: %v", err)
	}

	if cfg.Database.DSN != "/tmp/env-fallback.db" {
		t.Errorf("Database.DSN = %s, want /tmp/env-fallback.db", cfg.Database.DSN)
	}
}

func TestParseBoolValues(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"invalid", false},
	}

	for _, tt := range tests {
		os.Setenv("ARTISTDESK_METRICS_ENABLED", tt.value)

		cfg, err := config.LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv error: %v", err)
		}

		if cfg.Metrics.Enabled != tt.expected {
			t.Errorf("value=%q: Metrics.Enabled = %v, want %v", tt.value, cfg.Metrics.Enabled, tt.expected)
		}

		os.Unsetenv("ARTISTDESK_METRICS_ENABLED")
	}
}

func TestEnvOverrides_InvalidValues(t *testing.T) {
	os.Setenv("ARTISTDESK_SERVER_PORT", "not-a-number")
	os.Setenv("ARTISTDESK_SERVER_READ_TIMEOUT", "not-a-duration")
	os.Setenv("ARTISTDESK_SESSION_LIFETIME", "bad-value")
	defer func() {
		os.Unsetenv("ARTISTDESK_SERVER_PORT")
		os.Unsetenv("ARTISTDESK_SERVER_READ_TIMEOUT")
		os.Unsetenv("ARTISTDESK_SESSION_LIFETIME")
	}()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}

	// Should use defaults when env vars are invalid
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s (default)", cfg.Server.ReadTimeout)
	}
	if cfg.Auth.SessionLifetime != 24*time.Hour {
		t.Errorf("SessionLifetime = %v, want 24h (default)", cfg.Auth.SessionLifetime)
	}
}

// Helpers

func writeAndLoad(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := writeAndLoadErr(t, content)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return cfg
}

func writeAndLoadErr(t *testing.T, content string) (*config.Config, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return config.Load(path)
}
