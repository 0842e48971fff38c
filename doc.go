// Package signals provides a typed, in-process publish/subscribe dispatcher
// with per-kind payload pooling. Producers borrow a reusable signal instance,
// populate it, and send it; the dispatcher delivers it synchronously to every
// handler registered at the signal's own kind and at each ancestor kind in
// its declared hierarchy, then returns the instance to its pool for reuse.
//
// Signals is designed as a library, not a framework. Construct a Dispatcher,
// register your signal kinds, and subscribe plain Go functions.
//
// # Quick Start
//
//	const (
//	    KindCombat signals.Kind = "combat"
//	    KindDamage signals.Kind = "combat.damage"
//	)
//
//	type DamageSignal struct {
//	    Amount int
//	}
//
//	func (*DamageSignal) SignalKind() signals.Kind { return KindDamage }
//
//	d, err := signals.New()
//	if err != nil { ... }
//	d.RegisterKind(KindCombat, signals.KindRoot)
//	d.RegisterKind(KindDamage, KindCombat)
//
//	sub := signals.Subscribe(d, func(s *DamageSignal) {
//	    fmt.Println("damage:", s.Amount)
//	})
//
//	s := signals.Get[DamageSignal](d)
//	s.Amount = 10
//	signals.Send(d, s)
//
//	d.Off(KindDamage, sub)
//
// # Hierarchy
//
// Kinds form a tree rooted at [KindRoot]. The parent of each kind is declared
// explicitly with [Dispatcher.RegisterKind] (or ahead of time on a
// [Hierarchy]); there is no reflection over Go types. Sending a signal walks
// its ancestry chain from the concrete kind up to the last kind below the
// root, invoking handlers at every level that has any. Handlers registered
// with [Dispatcher.On] at an ancestor kind receive every send of every
// descendant kind, as the original concrete instance behind the [Signal]
// interface.
//
// # Pooling
//
// [Get] returns a previously released instance when one is available and a
// zero value otherwise. The pool performs no field reset; treat borrowed
// instances as carrying unspecified residual state unless you clear them.
// [Send] releases the instance back to its pool after the last handler has
// run, so a handler must not retain the instance beyond its own call.
// Releasing the same instance twice without an intervening Get is a caller
// error and is not detected unless [Config.DebugChecks] is enabled.
//
// # Concurrency
//
// A Dispatcher performs no internal locking. All operations on one Dispatcher
// must run on a single goroutine, or be serialized externally by the caller.
// Delivery is fully synchronous: Send returns only after every applicable
// handler has run and the instance has been released.
package signals
