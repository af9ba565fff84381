package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meltui/melt/internal/gallery"
	"github.com/meltui/melt/pkg/middleware"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/theme"
)

//go:embed client.js
var clientJS string

// Server is the gallery HTTP and websocket server.
type Server struct {
	config Config
	logger *slog.Logger

	demos *gallery.Registry
	// theme is shared by every session. It has no owner and lives as long
	// as the server.
	theme *reactive.Signal[theme.Theme]

	metrics  *middleware.Metrics
	tracing  *middleware.Tracing
	registry *prometheus.Registry

	upgrader websocket.Upgrader
	hub      *hub
	handler  http.Handler

	httpServer *http.Server

	// done is closed by Shutdown to end live connections.
	done      chan struct{}
	closeOnce sync.Once
	conns     sync.WaitGroup
}

// New builds a server. It does not listen until Run.
func New(cfg Config) (*Server, error) {
	cfg.applyDefaults()

	demos := cfg.Demos
	if demos == nil {
		var err error
		demos, err = gallery.Default()
		if err != nil {
			return nil, fmt.Errorf("server: load demos: %w", err)
		}
	}

	registry := cfg.MetricsRegistry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		config:   cfg,
		logger:   cfg.Logger.With("component", "server"),
		demos:    demos,
		theme:    reactive.NewSignal(cfg.Theme),
		registry: registry,
		metrics: middleware.NewMetrics(
			middleware.WithNamespace(cfg.MetricsNamespace),
			middleware.WithRegistry(registry),
		),
		tracing: middleware.NewTracing(
			middleware.WithTracerName(cfg.TracerName),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
			}),
		),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
		hub:  newHub(),
		done: make(chan struct{}),
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(s.tracing.Handler)

	r.Get("/", s.handleIndex)
	r.Get("/demos/{name}", s.handleDemo)
	r.Get("/ws/{name}", s.handleLive)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Theme returns the theme every session renders with.
func (s *Server) Theme() theme.Theme {
	return s.theme.Peek()
}

// SetTheme replaces the theme and re-renders every open session.
func (s *Server) SetTheme(th theme.Theme) {
	s.theme.Set(th)
	s.hub.broadcast()
}

func (s *Server) pageOptions(live bool) gallery.PageOptions {
	opts := gallery.PageOptions{
		Theme:  s.theme.Peek(),
		Pretty: s.config.Renderer.Pretty,
	}
	if live {
		opts.Script = clientJS
	}
	return opts
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := gallery.RenderIndex(&buf, s.demos, s.pageOptions(false)); err != nil {
		s.logger.Error("render index", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := s.demos.Get(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	_, span := s.tracing.StartRender(r.Context(), name)
	var buf bytes.Buffer
	err = s.renderDemo(&buf, d)
	middleware.EndSpan(span, err)
	if err != nil {
		s.logger.Error("render demo", "demo", name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// renderDemo renders d's initial state from a throwaway session. The live
// channel starts a fresh session of its own.
func (s *Server) renderDemo(buf *bytes.Buffer, d gallery.Demo) error {
	defer reactive.ReleaseGoroutine()
	sess := gallery.NewSession(d, s.theme, s.config.Renderer)
	defer sess.Close()
	return gallery.RenderDemoPage(buf, s.demos, sess, s.pageOptions(true))
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// logRequests logs each request once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// Run listens on Config.Addr until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	if s.config.Watch && s.config.ThemeFile != "" {
		w, err := newThemeWatcher(s.config.ThemeFile, s.config.ThemeDebounce, s.reloadTheme, s.logger)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live sessions, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.closeOnce.Do(func() { close(s.done) })

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	// Hijacked connections are not tracked by http.Server.
	waited := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// reloadTheme loads the theme file and applies it. On failure the current
// theme stays.
func (s *Server) reloadTheme() {
	th, err := theme.LoadFile(s.config.ThemeFile)
	s.metrics.RecordThemeReload(err)
	if err != nil {
		s.logger.Warn("theme reload failed", "file", s.config.ThemeFile, "error", err)
		return
	}
	s.logger.Info("theme reloaded", "file", s.config.ThemeFile, "theme", th.Name)
	s.SetTheme(th)
}
