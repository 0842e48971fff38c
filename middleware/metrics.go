package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/justinleemans/signals"
)

// meterName is the instrumentation scope name for signals metrics.
const meterName = "github.com/justinleemans/signals"

// Metrics returns middleware that records per-send delivery metrics using
// the global OTel MeterProvider. If no MeterProvider is configured, noop
// instruments are used and this middleware becomes a pass-through.
//
// Instruments:
//   - signals.send.duration (Float64Histogram): delivery time in seconds,
//     with attribute: kind
//   - signals.sends (Int64Counter): total sends, with attribute: kind
func Metrics() signals.Middleware {
	meter := otel.Meter(meterName)
	return MetricsWithMeter(meter)
}

// MetricsWithMeter returns metrics middleware using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter(meter metric.Meter) signals.Middleware {
	// Create instruments once at middleware construction time. On error,
	// the OTel API returns noop instruments so the middleware degrades
	// gracefully.
	duration, dErr := meter.Float64Histogram(
		"signals.send.duration",
		metric.WithDescription("Duration of signal delivery in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	sends, sErr := meter.Int64Counter(
		"signals.sends",
		metric.WithDescription("Total number of signal sends"),
		metric.WithUnit("{send}"),
	)
	_ = sErr // noop fallback guaranteed by OTel API contract

	return func(s signals.Signal, next signals.Handler) {
		start := time.Now()
		next(s)
		elapsed := time.Since(start).Seconds()

		// The dispatch path carries no context; instruments record
		// against the background context.
		ctx := context.Background()
		attrs := metric.WithAttributes(
			attribute.String("kind", string(s.SignalKind())),
		)

		duration.Record(ctx, elapsed, attrs)
		sends.Add(ctx, 1, attrs)
	}
}
