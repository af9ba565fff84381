package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meltui/melt/internal/config"
	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/internal/server"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/render"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		themeFile  string
		watch      bool
		dev        bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live component gallery",
		Long: `Serve every demo with a live websocket channel, Prometheus
metrics on /metrics and a health check on /healthz.

Examples:
  melt serve
  melt serve --addr=:8080
  melt serve --theme=brand.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if themeFile != "" {
				cfg.Theme.File = themeFile
			}
			if watch {
				cfg.Theme.Watch = true
			}
			if dev {
				cfg.Server.DevMode = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			th, err := cfg.LoadTheme()
			if err != nil {
				return err
			}
			reactive.DevMode = cfg.Server.DevMode

			srv, err := server.New(server.Config{
				Addr:             cfg.Server.Addr,
				Renderer:         render.RendererConfig{Pretty: cfg.Server.Pretty},
				Theme:            th,
				ThemeFile:        cfg.ThemePath(),
				Watch:            cfg.Theme.Watch,
				MetricsNamespace: cfg.Metrics.Namespace,
				TracerName:       cfg.Tracing.Tracer,
				ShutdownTimeout:  cfg.Server.ShutdownTimeout,
				Logger:           slog.Default(),
			})
			if err != nil {
				return errors.FromError(err, "M020")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx); err != nil {
				return errors.FromError(err, "M020")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.FileName, "Configuration file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from melt.yaml, else :7070)")
	cmd.Flags().StringVarP(&themeFile, "theme", "t", "", "Theme file (.yaml, .yml or .toml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the theme file when it changes")
	cmd.Flags().BoolVar(&dev, "dev", false, "Log writes to disposed models")

	return cmd
}

// loadConfig reads the configuration and applies its log settings unless
// flags overrode them.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		level, err := parseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		logLevel.Set(level)
	}
	if cfg.Log.JSON && !flags.Changed("log-json") {
		installLogger(cmd.ErrOrStderr(), logLevel.Level(), true)
	}
	return cfg, nil
}

