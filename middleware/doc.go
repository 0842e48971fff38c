// Package middleware provides composable middleware for signal delivery.
//
// A [signals.Middleware] wraps the delivery walk of one send. Middleware
// are installed with signals.WithMiddleware and applied in order: the first
// middleware is the outermost wrapper. [Chain] composes several middleware
// into one with the same rule.
//
// # Built-in Middleware
//
//   - [Logging] — logs kind and elapsed time for each send
//   - [Recover] — catches handler panics so a send always completes and
//     the instance is still released to its pool
//   - [Tracing] — wraps delivery in an OpenTelemetry span
//   - [Metrics] — records per-send duration and send counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() signals.Middleware {
//	    return func(s signals.Signal, next signals.Handler) {
//	        // pre-processing
//	        next(s)
//	        // post-processing
//	    }
//	}
//
// Middleware MUST call next to continue the chain; skipping next suppresses
// delivery for that send (the instance is still released afterwards).
package middleware
