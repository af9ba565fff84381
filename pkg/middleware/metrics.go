package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures Metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric (default: "melt").
	Namespace string

	Subsystem string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Buckets for the duration histograms (default: prometheus.DefBuckets).
	Buckets []float64

	// Registry receives the collectors (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "melt",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the gallery's Prometheus collectors.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventErrors     *prometheus.CounterVec
	liveSessions    prometheus.Gauge
	wsErrors        *prometheus.CounterVec
	themeReloads    *prometheus.CounterVec
}

// NewMetrics registers the collectors. Registering twice against the same
// registry panics, so create one Metrics per registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "HTTP requests by route pattern, method and status code",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_events_total",
			Help:        "Live-channel events by demo, event and status",
			ConstLabels: config.ConstLabels,
		}, []string{"demo", "event", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_event_duration_seconds",
			Help:        "Time from receiving an event to having the re-render ready",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"demo"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_event_errors_total",
			Help:        "Failed live-channel events by error type",
			ConstLabels: config.ConstLabels,
		}, []string{"demo", "error_type"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_sessions",
			Help:        "Open live-channel sessions",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		themeReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "theme_reloads_total",
			Help:        "Theme file reloads by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),
	}
}

// Handler records every request under its chi route pattern. Requests that
// matched no route are recorded as "unmatched".
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// RecordEvent records one live-channel event.
func (m *Metrics) RecordEvent(demo, event string, d time.Duration, err error) {
	m.eventDuration.WithLabelValues(demo).Observe(d.Seconds())
	status := "success"
	if err != nil {
		status = "error"
		m.eventErrors.WithLabelValues(demo, categorizeError(err)).Inc()
	}
	m.eventsTotal.WithLabelValues(demo, event, status).Inc()
}

func (m *Metrics) SessionStarted() { m.liveSessions.Inc() }

func (m *Metrics) SessionEnded() { m.liveSessions.Dec() }

// RecordWebSocketError counts a websocket failure of the given kind
// ("upgrade", "read", "write", "decode").
func (m *Metrics) RecordWebSocketError(kind string) {
	m.wsErrors.WithLabelValues(kind).Inc()
}

// RecordThemeReload counts a theme file reload.
func (m *Metrics) RecordThemeReload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.themeReloads.WithLabelValues(status).Inc()
}

// categorizeError keeps error labels low-cardinality.
func categorizeError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "handler not found"):
		return "not_found"
	case strings.Contains(msg, "closed"):
		return "closed"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "decode"), strings.Contains(msg, "invalid"):
		return "invalid"
	default:
		return "internal"
	}
}
