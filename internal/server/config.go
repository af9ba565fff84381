package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/meltui/melt/internal/gallery"
	"github.com/meltui/melt/pkg/render"
	"github.com/meltui/melt/pkg/theme"
)

// Config configures a Server. Zero fields take defaults.
type Config struct {
	// Addr is the listen address (default ":7070").
	Addr string

	Renderer render.RendererConfig

	// Theme is the initial theme (default theme.Light()).
	Theme theme.Theme

	// ThemeFile is reloaded on change when Watch is set.
	ThemeFile string
	Watch     bool

	// Demos defaults to gallery.Default().
	Demos *gallery.Registry

	// MetricsRegistry receives the server's collectors. When nil the
	// server creates its own registry with the Go and process collectors.
	MetricsRegistry  *prometheus.Registry
	MetricsNamespace string

	TracerName string

	// CheckOrigin for websocket upgrades (default: same host only).
	CheckOrigin func(r *http.Request) bool

	ReadHeaderTimeout time.Duration
	// WriteTimeout bounds each websocket write.
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// ThemeDebounce delays a reload after the last file event.
	ThemeDebounce time.Duration

	Logger *slog.Logger
}

// DefaultConfig returns the defaults New fills in.
func DefaultConfig() Config {
	return Config{
		Addr:              ":7070",
		Theme:             theme.Light(),
		MetricsNamespace:  "melt",
		TracerName:        "github.com/meltui/melt/gallery",
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		ThemeDebounce:     100 * time.Millisecond,
	}
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.Theme == (theme.Theme{}) {
		c.Theme = defaults.Theme
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = defaults.MetricsNamespace
	}
	if c.TracerName == "" {
		c.TracerName = defaults.TracerName
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.ThemeDebounce == 0 {
		c.ThemeDebounce = defaults.ThemeDebounce
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
