package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/pkg/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Theme.Name != DefaultThemeName {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if cfg.Metrics.Namespace != DefaultNamespace || cfg.Tracing.Tracer != DefaultTracer {
		t.Errorf("metrics/tracing defaults = %+v %+v", cfg.Metrics, cfg.Tracing)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Path() != path {
		t.Errorf("Path = %q", cfg.Path())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
  pretty: true
  shutdown_timeout: 2s
theme:
  name: dark
metrics:
  namespace: ""
log:
  level: debug
  json: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" || !cfg.Server.Pretty {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("empty namespace not defaulted: %q", cfg.Metrics.Namespace)
	}
	if !cfg.Log.JSON || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	th, err := cfg.LoadTheme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "dark" {
		t.Errorf("theme = %q", th.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"malformed yaml", "server: [", "M001"},
		{"bad port", "server:\n  addr: \":99999\"\n", "M002"},
		{"missing port", "server:\n  addr: \"localhost\"\n", "M002"},
		{"unknown theme", "theme:\n  name: sepia\n", "M012"},
		{"theme file format", "theme:\n  file: brand.json\n", "M011"},
		{"watch without file", "theme:\n  watch: true\n", "M002"},
		{"log level", "log:\n  level: verbose\n", "M002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Code(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadThemeFileRelativeToConfig(t *testing.T) {
	path := writeConfig(t, "theme:\n  file: brand.toml\n  watch: true\n")
	brand := filepath.Join(filepath.Dir(path), "brand.toml")
	if err := os.WriteFile(brand, []byte("[common]\ncolor_primary = \"#000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ThemePath() != brand {
		t.Errorf("ThemePath = %q, want %q", cfg.ThemePath(), brand)
	}
	th, err := cfg.LoadTheme()
	if err != nil {
		t.Fatal(err)
	}
	if th.Common.ColorPrimary != "#000" || th.Select != theme.Light().Select {
		t.Errorf("theme = %+v", th)
	}

	os.Remove(brand)
	if _, err := cfg.LoadTheme(); errors.Code(err) != "M010" {
		t.Errorf("missing theme file err = %v", err)
	}
}
