package signals

import "log/slog"

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// HookEmitter receives dispatcher lifecycle notifications. The hook package
// provides the standard implementation (hook.Registry); the Dispatcher holds
// the interface to avoid an import cycle with packages that need the core
// types.
type HookEmitter interface {
	EmitSignalSent(kind Kind, levels, handlers int)
	EmitSignalMuted(kind Kind)
	EmitSubscriberAdded(kind Kind, sub Subscription)
	EmitSubscriberRemoved(kind Kind, sub Subscription)
	EmitKindMuted(kind Kind)
	EmitKindUnmuted(kind Kind)
}

// WithLogger sets the structured logger for the dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) error {
		if l == nil {
			return ErrNilLogger
		}
		d.logger = l
		return nil
	}
}

// WithHierarchy installs a prebuilt kind hierarchy. Kinds can still be added
// afterwards through RegisterKind.
func WithHierarchy(h *Hierarchy) Option {
	return func(d *Dispatcher) error {
		if h == nil {
			return ErrNilHierarchy
		}
		d.hierarchy = h
		return nil
	}
}

// WithHooks sets the lifecycle hook emitter, typically a hook.Registry.
func WithHooks(e HookEmitter) Option {
	return func(d *Dispatcher) error {
		if e == nil {
			return ErrNilHooks
		}
		d.hooks = e
		return nil
	}
}

// WithMiddleware appends middleware around the delivery walk of every send.
// Middleware run in the order given: the first is the outermost wrapper.
func WithMiddleware(mws ...Middleware) Option {
	return func(d *Dispatcher) error {
		d.middleware = append(d.middleware, mws...)
		return nil
	}
}

// WithPoolCapacity sets the initial capacity of each per-kind free list.
func WithPoolCapacity(n int) Option {
	return func(d *Dispatcher) error {
		d.config.PoolCapacity = n
		return nil
	}
}

// WithDebugChecks enables debug assertions for usage-contract violations.
func WithDebugChecks() Option {
	return func(d *Dispatcher) error {
		d.config.DebugChecks = true
		return nil
	}
}
