package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/justinleemans/signals"
)

// tracerName is the instrumentation scope name for signals tracing.
const tracerName = "github.com/justinleemans/signals"

// Tracing returns middleware that wraps signal delivery in an OpenTelemetry
// span. If no TracerProvider is configured globally, the default noop tracer
// is used and this middleware becomes a pass-through with zero overhead.
//
// Span attributes include: signals.kind.
func Tracing() signals.Middleware {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) signals.Middleware {
	return func(s signals.Signal, next signals.Handler) {
		_, span := tracer.Start(context.Background(), "signals.send",
			trace.WithAttributes(
				attribute.String("signals.kind", string(s.SignalKind())),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		next(s)
	}
}
