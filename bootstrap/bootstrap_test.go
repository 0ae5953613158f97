package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/artpar/artistdesk/config"
)

func testConfig(t *testing.T, metricsEnabled bool) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    filepath.Join(t.TempDir(), "bootstrap-test.db"),
		},
		Auth: config.AuthConfig{
			SessionLifetime: time.Hour,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		Metrics: config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"},
	}
}

func TestNew(t *testing.T) {
	a, err := New(testConfig(t, true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	if a.DB == nil {
		t.Fatal("database not initialized")
	}
	if a.HTTPServer == nil {
		t.Fatal("http server not initialized")
	}
	if a.HTTPServer.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v", a.HTTPServer.ReadTimeout)
	}
}

func TestHealthEndpoint(t *testing.T) {
	a, err := New(testConfig(t, false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	rec := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	a, err := New(testConfig(t, true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	rec := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsDisabled(t *testing.T) {
	a, err := New(testConfig(t, false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	rec := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	// Falls through to the portal router, which redirects anonymous
	// requests to the login page.
	if rec.Code == http.StatusOK {
		t.Error("metrics should not be served when disabled")
	}
}

func TestLoginPageServed(t *testing.T) {
	a, err := New(testConfig(t, false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	rec := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/login", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Login") {
		t.Error("login page not rendered")
	}
}

func TestNewWithHotReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  host: 127.0.0.1
  port: 18099
database:
  driver: sqlite
  dsn: ` + filepath.Join(dir, "app.db") + `
logging:
  level: error
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, err := NewWithHotReload(path)
	if err != nil {
		t.Fatalf("NewWithHotReload: %v", err)
	}
	defer a.Shutdown()

	if a.Holder == nil {
		t.Fatal("config holder not attached")
	}
	if got := a.Holder.Get().Server.Port; got != 18099 {
		t.Errorf("port = %d, want 18099", got)
	}
}

func TestNewBadDatabasePath(t *testing.T) {
	cfg := testConfig(t, false)
	cfg.Database.DSN = "/nonexistent-dir/sub/app.db"

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unwritable database path")
	}
}
