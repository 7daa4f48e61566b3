// Package telemetry traces store operations with OpenTelemetry.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before constructing the app:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer name for SkillLink stores.
const defaultTracerName = "skilllink"

// Config configures tracing.
type Config struct {
	// TracerName is the name of the tracer (default: "skilllink").
	TracerName string

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures tracing.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// Tracer wraps store operations in spans.
type Tracer struct {
	config Config
}

// NewTracer resolves a tracer from the global provider.
func NewTracer(opts ...Option) *Tracer {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Tracer{config: config}
}

// Operation runs fn inside a span named name. The error returned by fn is
// recorded on the span and sets its status before being passed through.
func (t *Tracer) Operation(ctx context.Context, name string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := t.config.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
