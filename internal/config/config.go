package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/pkg/theme"
)

const (
	// FileName is the default configuration file.
	FileName = "melt.yaml"

	DefaultAddr            = ":7070"
	DefaultThemeName       = "light"
	DefaultNamespace       = "melt"
	DefaultTracer          = "github.com/meltui/melt/gallery"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config is the parsed melt.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Theme   ThemeConfig   `yaml:"theme"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
	Log     LogConfig     `yaml:"log"`

	path string
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Pretty indents rendered HTML.
	Pretty bool `yaml:"pretty"`
	// DevMode logs writes to disposed models.
	DevMode         bool          `yaml:"dev_mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ThemeConfig struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

type TracingConfig struct {
	Tracer string `yaml:"tracer"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// New returns a configuration with every default applied.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Theme:   ThemeConfig{Name: DefaultThemeName},
		Metrics: MetricsConfig{Namespace: DefaultNamespace},
		Tracing: TracingConfig{Tracer: DefaultTracer},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	cfg.path = path

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.New("M001").WithFile(path).Wrap(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("M001").WithFile(path).Wrap(err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// applyDefaults fills keys the file set to empty values.
func (c *Config) applyDefaults() {
	def := New()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Theme.Name == "" {
		c.Theme.Name = def.Theme.Name
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = def.Metrics.Namespace
	}
	if c.Tracing.Tracer == "" {
		c.Tracing.Tracer = def.Tracing.Tracer
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate checks values the server cannot start with.
func (c *Config) Validate() error {
	_, port, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		return errors.New("M002").
			WithFile(c.path).
			WithDetail(fmt.Sprintf("server.addr %q is not host:port", c.Server.Addr)).
			Wrap(err)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return errors.New("M002").
			WithFile(c.path).
			WithDetail(fmt.Sprintf("server.addr port %q must be between 0 and 65535", port))
	}

	if c.Theme.File == "" {
		if _, ok := theme.ByName(c.Theme.Name); !ok {
			return errors.New("M012").
				WithFile(c.path).
				WithDetail(fmt.Sprintf("theme.name %q is not one of %s", c.Theme.Name, strings.Join(theme.Names(), ", ")))
		}
	} else {
		if _, err := theme.FormatOf(c.Theme.File); err != nil {
			return errors.New("M011").WithFile(c.Theme.File).Wrap(err)
		}
	}
	if c.Theme.Watch && c.Theme.File == "" {
		return errors.New("M002").
			WithFile(c.path).
			WithDetail("theme.watch needs theme.file")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("M002").
			WithFile(c.path).
			WithDetail(fmt.Sprintf("log.level %q must be debug, info, warn or error", c.Log.Level))
	}
	return nil
}

// ThemePath resolves theme.file relative to the configuration file.
func (c *Config) ThemePath() string {
	if c.Theme.File == "" || filepath.IsAbs(c.Theme.File) || c.path == "" {
		return c.Theme.File
	}
	return filepath.Join(filepath.Dir(c.path), c.Theme.File)
}

// LoadTheme returns the configured theme: the theme file when set, the
// named built-in theme otherwise.
func (c *Config) LoadTheme() (theme.Theme, error) {
	if c.Theme.File == "" {
		th, ok := theme.ByName(c.Theme.Name)
		if !ok {
			return theme.Theme{}, errors.New("M012").WithDetail(fmt.Sprintf("unknown theme %q", c.Theme.Name))
		}
		return th, nil
	}
	path := c.ThemePath()
	th, err := theme.LoadFile(path)
	if stderrors.Is(err, theme.ErrUnknownFormat) {
		return theme.Theme{}, errors.New("M011").WithFile(path).Wrap(err)
	}
	if err != nil {
		return theme.Theme{}, errors.New("M010").WithFile(path).Wrap(err)
	}
	return th, nil
}
