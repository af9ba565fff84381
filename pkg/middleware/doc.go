// Package middleware instruments the gallery server.
//
// Both halves are chi-compatible func(http.Handler) http.Handler
// middleware plus recording helpers for live-channel events, which do not
// travel through the HTTP stack.
//
// # Prometheus
//
//	m := middleware.NewMetrics(middleware.WithNamespace("melt"))
//	r.Use(m.Handler)
//	...
//	m.RecordEvent("select", "onclick", time.Since(start), err)
//
// Metrics:
//   - <ns>_http_requests_total{route,method,status}
//   - <ns>_http_request_duration_seconds{route}
//   - <ns>_live_events_total{demo,event,status}
//   - <ns>_live_event_duration_seconds{demo}
//   - <ns>_live_event_errors_total{demo,error_type}
//   - <ns>_live_sessions
//   - <ns>_websocket_errors_total{type}
//   - <ns>_theme_reloads_total{status}
//
// # OpenTelemetry
//
//	tr := middleware.NewTracing(middleware.WithTracerName("melt/gallery"))
//	r.Use(tr.Handler)
//	ctx, span := tr.StartEvent(ctx, "select", ev)
//	defer middleware.EndSpan(span, err)
//
// The tracer comes from the global provider; install one with
// otel.SetTracerProvider before serving.
package middleware
