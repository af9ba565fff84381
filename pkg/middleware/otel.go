package middleware

import (
	"context"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/meltui/melt/pkg/vdom"
)

const defaultTracerName = "github.com/meltui/melt"

// OTelConfig configures Tracing.
type OTelConfig struct {
	// TracerName names the tracer (default: "github.com/meltui/melt").
	TracerName string

	// Filter returns false for requests that should not be traced.
	Filter func(r *http.Request) bool

	// AttributeExtractor adds attributes to request spans.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue
}

// OTelOption configures Tracing.
type OTelOption func(*OTelConfig)

func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

func WithRequestFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = extractor }
}

// Tracing creates spans for requests and live-channel events.
type Tracing struct {
	config OTelConfig
	tracer trace.Tracer
}

// NewTracing resolves the tracer from the global provider.
func NewTracing(opts ...OTelOption) *Tracing {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	return &Tracing{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

// Handler wraps each request in a server span. 5xx responses mark the span
// as failed.
func (t *Tracing) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.config.Filter != nil && !t.config.Filter(r) {
			next.ServeHTTP(w, r)
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		}
		if t.config.AttributeExtractor != nil {
			attrs = append(attrs, t.config.AttributeExtractor(r)...)
		}

		ctx, span := t.tracer.Start(r.Context(),
			fmt.Sprintf("HTTP %s", r.Method),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetName(fmt.Sprintf("HTTP %s %s", r.Method, routePattern(r)))
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

// StartEvent starts a span for a live-channel event.
func (t *Tracing) StartEvent(ctx context.Context, demo string, ev vdom.Event) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "melt.event "+ev.Type,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("melt.demo", demo),
			attribute.String("melt.event_type", ev.Type),
			attribute.String("melt.event_target", ev.HID),
		),
	)
}

// StartRender starts a span for rendering a demo page.
func (t *Tracing) StartRender(ctx context.Context, demo string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "melt.render",
		trace.WithAttributes(attribute.String("melt.demo", demo)),
	)
}

// EndSpan records err, if any, and ends span.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
