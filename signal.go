package signals

import "github.com/justinleemans/signals/id"

// Kind identifies a signal category. Kinds form a tree rooted at KindRoot;
// the tree is declared explicitly through a Hierarchy rather than derived
// from Go's type system.
type Kind string

// KindRoot is the root marker category. Every registered kind descends from
// it. It is a structural marker only: it cannot be registered, subscribed
// to, or sent.
const KindRoot Kind = "signal"

// Signal is implemented by every concrete signal payload type. SignalKind
// must be a constant-return method usable on a zero (including nil pointer)
// receiver; the dispatcher calls it to resolve type identity without
// reflection.
type Signal interface {
	SignalKind() Kind
}

// Ptr constrains a type parameter to a pointer to a concrete signal payload
// struct. It lets the generic API accept the struct type while operating on
// pointers, so pooled instances keep their identity across reuse.
type Ptr[T any] interface {
	*T
	Signal
}

// Handler is a type-erased signal handler. Handlers receive the original
// concrete instance behind the Signal interface; handlers registered at an
// ancestor kind type-switch on the payloads they care about.
type Handler func(s Signal)

// Middleware wraps the delivery walk of a single send. Middleware MUST call
// next to continue the chain; the signal passed to next must be the one
// received.
type Middleware func(s Signal, next Handler)

// Subscription identifies one handler registration. Tokens are TypeIDs with
// the "sub" prefix. A Subscription that was never issued, or was already
// removed, unsubscribes as a no-op.
type Subscription = id.ID

// kindOf resolves the kind of the concrete signal type T without an instance.
func kindOf[T any, P Ptr[T]]() Kind {
	var v T
	return P(&v).SignalKind()
}
