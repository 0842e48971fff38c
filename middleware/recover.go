package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/justinleemans/signals"
)

// Recover returns middleware that recovers from panics in handlers.
// The panic is logged with a stack trace and the send completes normally,
// so the instance is still released to its pool. Handlers at levels after
// the panicking one are skipped for that send.
//
// Recover also catches the unregistered-kind panic the dispatcher raises
// during the ancestry walk, turning that programming error into a logged
// event; the send then pools the instance under the unregistered kind.
func Recover(logger *slog.Logger) signals.Middleware {
	return func(s signals.Signal, next signals.Handler) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("signal handler panicked",
					slog.String("kind", string(s.SignalKind())),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		next(s)
	}
}
