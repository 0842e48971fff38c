// Package hook defines the lifecycle hook system for the signals dispatcher.
// Hooks are notified of dispatcher events (signal sent, subscriber added,
// kind muted, etc.) and can react to them — logging, metrics, debugging.
//
// Each lifecycle event is a separate interface so hooks opt in only to the
// events they care about.
package hook

import "github.com/justinleemans/signals"

// Hook is the base interface all hooks must implement.
type Hook interface {
	// Name returns a unique human-readable name for the hook.
	Name() string
}

// SignalSent is called after a send completes: every applicable level has
// been invoked and the instance is about to be released. levels is the
// number of ancestry levels that invoked at least one handler; handlers is
// the total number of handler invocations.
type SignalSent interface {
	OnSignalSent(kind signals.Kind, levels, handlers int) error
}

// SignalMuted is called when a send encountered at least one muted level
// along the ancestry chain.
type SignalMuted interface {
	OnSignalMuted(kind signals.Kind) error
}

// SubscriberAdded is called after a handler is registered at a kind.
type SubscriberAdded interface {
	OnSubscriberAdded(kind signals.Kind, sub signals.Subscription) error
}

// SubscriberRemoved is called after a handler is actually removed from a
// kind. Unsubscribing a stale token does not fire this hook.
type SubscriberRemoved interface {
	OnSubscriberRemoved(kind signals.Kind, sub signals.Subscription) error
}

// KindMuted is called when a kind transitions from unmuted to muted.
// Redundant mutes do not fire this hook.
type KindMuted interface {
	OnKindMuted(kind signals.Kind) error
}

// KindUnmuted is called when a kind transitions from muted to unmuted.
type KindUnmuted interface {
	OnKindUnmuted(kind signals.Kind) error
}
