package hook

import (
	"log/slog"

	"github.com/justinleemans/signals"
)

// Compile-time check: the registry satisfies the dispatcher's emitter
// contract.
var _ signals.HookEmitter = (*Registry)(nil)

// Named entry types pair a hook implementation with the hook name captured
// at registration time. This avoids type-asserting back to Hook inside the
// emit methods.
type signalSentEntry struct {
	name string
	hook SignalSent
}

type signalMutedEntry struct {
	name string
	hook SignalMuted
}

type subscriberAddedEntry struct {
	name string
	hook SubscriberAdded
}

type subscriberRemovedEntry struct {
	name string
	hook SubscriberRemoved
}

type kindMutedEntry struct {
	name string
	hook KindMuted
}

type kindUnmutedEntry struct {
	name string
	hook KindUnmuted
}

// Registry holds registered hooks and dispatches lifecycle events to them.
// It type-caches hooks at registration time so emit calls iterate plain
// slices with no type assertions.
//
// Pass a Registry to the dispatcher with signals.WithHooks.
type Registry struct {
	logger *slog.Logger

	signalSent        []signalSentEntry
	signalMuted       []signalMutedEntry
	subscriberAdded   []subscriberAddedEntry
	subscriberRemoved []subscriberRemovedEntry
	kindMuted         []kindMutedEntry
	kindUnmuted       []kindUnmutedEntry
}

// NewRegistry creates an empty hook registry. A nil logger falls back to
// slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register adds a hook. Each lifecycle interface the hook implements is
// cached for emission.
func (r *Registry) Register(h Hook) {
	name := h.Name()

	if v, ok := h.(SignalSent); ok {
		r.signalSent = append(r.signalSent, signalSentEntry{name: name, hook: v})
	}
	if v, ok := h.(SignalMuted); ok {
		r.signalMuted = append(r.signalMuted, signalMutedEntry{name: name, hook: v})
	}
	if v, ok := h.(SubscriberAdded); ok {
		r.subscriberAdded = append(r.subscriberAdded, subscriberAddedEntry{name: name, hook: v})
	}
	if v, ok := h.(SubscriberRemoved); ok {
		r.subscriberRemoved = append(r.subscriberRemoved, subscriberRemovedEntry{name: name, hook: v})
	}
	if v, ok := h.(KindMuted); ok {
		r.kindMuted = append(r.kindMuted, kindMutedEntry{name: name, hook: v})
	}
	if v, ok := h.(KindUnmuted); ok {
		r.kindUnmuted = append(r.kindUnmuted, kindUnmutedEntry{name: name, hook: v})
	}
}

// EmitSignalSent notifies all hooks that implement SignalSent.
func (r *Registry) EmitSignalSent(kind signals.Kind, levels, handlers int) {
	for _, e := range r.signalSent {
		if err := e.hook.OnSignalSent(kind, levels, handlers); err != nil {
			r.logHookError("OnSignalSent", e.name, err)
		}
	}
}

// EmitSignalMuted notifies all hooks that implement SignalMuted.
func (r *Registry) EmitSignalMuted(kind signals.Kind) {
	for _, e := range r.signalMuted {
		if err := e.hook.OnSignalMuted(kind); err != nil {
			r.logHookError("OnSignalMuted", e.name, err)
		}
	}
}

// EmitSubscriberAdded notifies all hooks that implement SubscriberAdded.
func (r *Registry) EmitSubscriberAdded(kind signals.Kind, sub signals.Subscription) {
	for _, e := range r.subscriberAdded {
		if err := e.hook.OnSubscriberAdded(kind, sub); err != nil {
			r.logHookError("OnSubscriberAdded", e.name, err)
		}
	}
}

// EmitSubscriberRemoved notifies all hooks that implement SubscriberRemoved.
func (r *Registry) EmitSubscriberRemoved(kind signals.Kind, sub signals.Subscription) {
	for _, e := range r.subscriberRemoved {
		if err := e.hook.OnSubscriberRemoved(kind, sub); err != nil {
			r.logHookError("OnSubscriberRemoved", e.name, err)
		}
	}
}

// EmitKindMuted notifies all hooks that implement KindMuted.
func (r *Registry) EmitKindMuted(kind signals.Kind) {
	for _, e := range r.kindMuted {
		if err := e.hook.OnKindMuted(kind); err != nil {
			r.logHookError("OnKindMuted", e.name, err)
		}
	}
}

// EmitKindUnmuted notifies all hooks that implement KindUnmuted.
func (r *Registry) EmitKindUnmuted(kind signals.Kind) {
	for _, e := range r.kindUnmuted {
		if err := e.hook.OnKindUnmuted(kind); err != nil {
			r.logHookError("OnKindUnmuted", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block dispatch.
func (r *Registry) logHookError(hook, hookName string, err error) {
	r.logger.Warn("lifecycle hook error",
		slog.String("hook", hook),
		slog.String("name", hookName),
		slog.String("error", err.Error()),
	)
}
