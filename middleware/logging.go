package middleware

import (
	"log/slog"
	"time"

	"github.com/justinleemans/signals"
)

// Logging returns middleware that logs each send at debug level with the
// signal kind and elapsed delivery time. Sends are a hot path; nothing is
// logged above debug.
func Logging(logger *slog.Logger) signals.Middleware {
	return func(s signals.Signal, next signals.Handler) {
		start := time.Now()
		next(s)
		logger.Debug("signal sent",
			slog.String("kind", string(s.SignalKind())),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
