package signals

import (
	"fmt"
	"log/slog"

	"github.com/justinleemans/signals/id"
)

// Dispatcher is the central coordinator for signal pooling, subscription,
// and delivery. It owns one free list and one handler registry per kind,
// both created lazily on first use and kept for the dispatcher's lifetime.
//
// Create one with New and functional options. A Dispatcher performs no
// internal locking; see the package documentation for the single-goroutine
// precondition.
type Dispatcher struct {
	id        id.ID
	config    Config
	logger    *slog.Logger
	hierarchy *Hierarchy
	hooks     HookEmitter

	pools      map[Kind]*freeList
	registries map[Kind]*registry

	middleware []Middleware
	deliver    Handler

	// Counters for Stats. Plain integers: the dispatcher is single-owner.
	sends      uint64
	deliveries uint64
}

// New creates a new Dispatcher with the given options.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		id:         id.NewDispatcherID(),
		config:     DefaultConfig(),
		logger:     slog.Default(),
		hierarchy:  NewHierarchy(),
		pools:      make(map[Kind]*freeList),
		registries: make(map[Kind]*registry),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	d.logger = d.logger.With(slog.String("dispatcher_id", d.id.String()))

	// Compose the delivery chain once: the first middleware is outermost,
	// the ancestry walk is the terminal handler.
	d.deliver = d.dispatch
	for i := len(d.middleware) - 1; i >= 0; i-- {
		mw := d.middleware[i]
		next := d.deliver
		d.deliver = func(s Signal) { mw(s, next) }
	}

	return d, nil
}

// ID returns the dispatcher's unique instance ID (prefix "sbus").
func (d *Dispatcher) ID() id.ID { return d.id }

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger { return d.logger }

// Config returns a copy of the dispatcher's configuration.
func (d *Dispatcher) Config() Config { return d.config }

// Hierarchy returns the dispatcher's kind hierarchy.
func (d *Dispatcher) Hierarchy() *Hierarchy { return d.hierarchy }

// RegisterKind declares kind as a direct child of parent in the
// dispatcher's hierarchy. See Hierarchy.Register for the rules.
func (d *Dispatcher) RegisterKind(kind, parent Kind) error {
	if err := d.hierarchy.Register(kind, parent); err != nil {
		return err
	}
	d.logger.Debug("signal kind registered",
		slog.String("kind", string(kind)),
		slog.String("parent", string(parent)),
	)
	return nil
}

// ──────────────────────────────────────────────────
// Kind-addressed subscription surface
// ──────────────────────────────────────────────────

// On registers a handler at the given kind and returns its subscription
// token. Handlers at a kind receive every send of that kind and of every
// descendant kind, as the original concrete instance behind the Signal
// interface. Registering the same function twice yields two tokens and two
// invocations per send.
//
// On panics if fn is nil or kind has not been registered in the hierarchy
// (programming errors).
func (d *Dispatcher) On(kind Kind, fn Handler) Subscription {
	if fn == nil {
		panic(fmt.Sprintf("signals: nil handler for kind %q", kind))
	}
	d.requireKind(kind)
	sub := id.NewSubscriptionID()
	d.reg(kind).add(sub, fn)
	if d.hooks != nil {
		d.hooks.EmitSubscriberAdded(kind, sub)
	}
	return sub
}

// Off removes the handler registered under the given subscription token.
// A token that was never issued at this kind, or was already removed, is a
// no-op. Remaining handlers keep their relative order.
func (d *Dispatcher) Off(kind Kind, sub Subscription) {
	r, ok := d.registries[kind]
	if !ok {
		return
	}
	if r.remove(sub) && d.hooks != nil {
		d.hooks.EmitSubscriberRemoved(kind, sub)
	}
}

// MuteKind suppresses delivery at the given kind without unsubscribing its
// handlers. Sends of descendant kinds still deliver at their other,
// unmuted levels. Idempotent. Panics if kind has not been registered.
func (d *Dispatcher) MuteKind(kind Kind) {
	d.requireKind(kind)
	if d.reg(kind).mute() && d.hooks != nil {
		d.hooks.EmitKindMuted(kind)
	}
}

// UnmuteKind resumes delivery at the given kind. Idempotent. Panics if
// kind has not been registered.
func (d *Dispatcher) UnmuteKind(kind Kind) {
	d.requireKind(kind)
	if d.reg(kind).unmute() && d.hooks != nil {
		d.hooks.EmitKindUnmuted(kind)
	}
}

// ──────────────────────────────────────────────────
// Dispatch
// ──────────────────────────────────────────────────

// dispatch is the terminal delivery handler: it walks the signal's ancestry
// chain most-derived first and invokes every registry along it. The mute
// flag is evaluated per level at invocation time.
func (d *Dispatcher) dispatch(s Signal) {
	kind := s.SignalKind()
	chain, err := d.hierarchy.Chain(kind)
	if err != nil {
		panic(fmt.Sprintf("signals: send of unregistered kind %q", kind))
	}

	levels, delivered := 0, 0
	mutedHit := false
	for _, level := range chain {
		r, ok := d.registries[level]
		if !ok {
			continue
		}
		n, muted := r.handle(s)
		if muted {
			mutedHit = true
			continue
		}
		if n > 0 {
			levels++
			delivered += n
		}
	}

	d.sends++
	d.deliveries += uint64(delivered)

	if d.hooks != nil {
		if mutedHit {
			d.hooks.EmitSignalMuted(kind)
		}
		d.hooks.EmitSignalSent(kind, levels, delivered)
	}
}

// release returns a sent instance to the free list for the given kind.
func (d *Dispatcher) release(kind Kind, s Signal) {
	fl := d.pool(kind)
	if d.config.DebugChecks {
		fl.assertNotPooled(s)
	}
	fl.put(s)
}

// pool returns the free list for kind, creating it on first access.
func (d *Dispatcher) pool(kind Kind) *freeList {
	fl, ok := d.pools[kind]
	if !ok {
		fl = newFreeList(d.config.PoolCapacity)
		d.pools[kind] = fl
	}
	return fl
}

// requireKind panics unless kind has been registered in the hierarchy.
// Borrowing, subscribing, or muting at an unknown kind is a programming
// error: the registry it would create could never fire.
func (d *Dispatcher) requireKind(kind Kind) {
	if !d.hierarchy.Registered(kind) {
		panic(fmt.Sprintf("signals: unregistered kind %q", kind))
	}
}

// reg returns the registry for kind, creating it on first access.
func (d *Dispatcher) reg(kind Kind) *registry {
	r, ok := d.registries[kind]
	if !ok {
		r = newRegistry()
		d.registries[kind] = r
	}
	return r
}

// ──────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────

// Stats contains dispatcher counters and registry sizes.
type Stats struct {
	Kinds         int    `json:"kinds"`
	Subscriptions int    `json:"subscriptions"`
	Pooled        int    `json:"pooled"`
	Sends         uint64 `json:"sends"`
	Deliveries    uint64 `json:"deliveries"`
}

// Stats returns a snapshot of dispatcher statistics.
func (d *Dispatcher) Stats() Stats {
	st := Stats{
		Kinds:      d.hierarchy.Len(),
		Sends:      d.sends,
		Deliveries: d.deliveries,
	}
	for _, r := range d.registries {
		st.Subscriptions += r.len()
	}
	for _, fl := range d.pools {
		st.Pooled += fl.size()
	}
	return st
}

// ──────────────────────────────────────────────────
// Typed API
// ──────────────────────────────────────────────────

// Get returns a signal instance of type T from the dispatcher's pool for
// T's kind, constructing a zero value when the pool is empty. No field
// reset is performed on reused instances. Get panics if T's kind has not
// been registered in the hierarchy.
//
// These are package-level generic functions because Go does not allow
// generic methods on non-generic receiver types.
func Get[T any, P Ptr[T]](d *Dispatcher) P {
	kind := kindOf[T, P]()
	d.requireKind(kind)
	if s, ok := d.pool(kind).get(); ok {
		inst, ok := s.(P)
		if !ok {
			panic(fmt.Sprintf("signals: pool for kind %q holds %T, want %T", kind, s, inst))
		}
		return inst
	}
	return P(new(T))
}

// Send delivers s to every handler along its ancestry chain, most-derived
// level first and in registration order within each level, then releases s
// back to the pool for T's kind. Send returns only after every applicable
// handler has run; a handler must not retain s beyond its own call.
//
// Send panics if T's kind has not been registered in the hierarchy.
func Send[T any, P Ptr[T]](d *Dispatcher, s P) {
	d.deliver(s)
	d.release(kindOf[T, P](), s)
}

// SendNew borrows a default instance of T and immediately sends it.
// Equivalent to Send(d, Get[T](d)).
func SendNew[T any, P Ptr[T]](d *Dispatcher) {
	Send[T, P](d, Get[T, P](d))
}

// Subscribe registers a typed handler at T's kind and returns its
// subscription token. The handler fires only for sends whose concrete type
// is T; to observe a kind including its descendant kinds, register an
// untyped handler with Dispatcher.On. Panics if T's kind has not been
// registered in the hierarchy.
func Subscribe[T any, P Ptr[T]](d *Dispatcher, fn func(s P)) Subscription {
	if fn == nil {
		panic(fmt.Sprintf("signals: nil handler for kind %q", kindOf[T, P]()))
	}
	return d.On(kindOf[T, P](), func(s Signal) {
		if v, ok := s.(P); ok {
			fn(v)
		}
	})
}

// Unsubscribe removes the handler registered under sub at T's kind.
// A stale or foreign token is a no-op.
func Unsubscribe[T any, P Ptr[T]](d *Dispatcher, sub Subscription) {
	d.Off(kindOf[T, P](), sub)
}

// Mute suppresses delivery at T's kind. See Dispatcher.MuteKind.
func Mute[T any, P Ptr[T]](d *Dispatcher) {
	d.MuteKind(kindOf[T, P]())
}

// Unmute resumes delivery at T's kind. See Dispatcher.UnmuteKind.
func Unmute[T any, P Ptr[T]](d *Dispatcher) {
	d.UnmuteKind(kindOf[T, P]())
}
