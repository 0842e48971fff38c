package middleware

import "github.com/justinleemans/signals"

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, metrics) executes as:
//
//	logging → recover → metrics → delivery
func Chain(mws ...signals.Middleware) signals.Middleware {
	return func(s signals.Signal, next signals.Handler) {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(s signals.Signal) {
				mw(s, prev)
			}
		}
		h(s)
	}
}
