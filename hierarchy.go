package signals

import (
	"fmt"
	"sort"
)

// Hierarchy is the declared ancestry relation over signal kinds. Each kind
// names its direct parent at registration time; ancestry chains are resolved
// once, at registration, and cached.
//
// Because a parent must already be registered (or be KindRoot) when a child
// is added, the relation is acyclic by construction.
type Hierarchy struct {
	parent map[Kind]Kind
	chains map[Kind][]Kind
}

// NewHierarchy creates an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		parent: make(map[Kind]Kind),
		chains: make(map[Kind][]Kind),
	}
}

// Register declares kind as a direct child of parent. The parent must be
// KindRoot or a previously registered kind. Registering KindRoot itself, the
// empty kind, or an already registered kind is an error.
func (h *Hierarchy) Register(kind, parent Kind) error {
	if kind == KindRoot || kind == "" {
		return fmt.Errorf("%w: %q", ErrKindReserved, kind)
	}
	if _, ok := h.parent[kind]; ok {
		return fmt.Errorf("%w: %q", ErrKindRegistered, kind)
	}
	if parent != KindRoot {
		if _, ok := h.parent[parent]; !ok {
			return fmt.Errorf("%w: %q (registering %q)", ErrParentUnknown, parent, kind)
		}
	}

	h.parent[kind] = parent

	// Chain = kind followed by the parent's cached chain. The walk stops
	// below the root marker, so a direct child of KindRoot has a chain of
	// just itself.
	chain := make([]Kind, 0, len(h.chains[parent])+1)
	chain = append(chain, kind)
	chain = append(chain, h.chains[parent]...)
	h.chains[kind] = chain

	return nil
}

// MustRegister is like Register but panics on error. Use for hardcoded
// hierarchies built at startup.
func (h *Hierarchy) MustRegister(kind, parent Kind) {
	if err := h.Register(kind, parent); err != nil {
		panic(err)
	}
}

// Registered reports whether kind has been registered.
func (h *Hierarchy) Registered(kind Kind) bool {
	_, ok := h.parent[kind]
	return ok
}

// Parent returns the declared direct parent of kind. The second return is
// false if kind is not registered.
func (h *Hierarchy) Parent(kind Kind) (Kind, bool) {
	p, ok := h.parent[kind]
	return p, ok
}

// Chain returns the ancestry chain for kind, ordered most-derived first:
// the kind itself, then each ancestor up to (excluding) KindRoot. The
// returned slice is shared; callers must not modify it.
func (h *Hierarchy) Chain(kind Kind) ([]Kind, error) {
	chain, ok := h.chains[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKindUnknown, kind)
	}
	return chain, nil
}

// Kinds returns all registered kinds in lexical order.
func (h *Hierarchy) Kinds() []Kind {
	out := make([]Kind, 0, len(h.parent))
	for k := range h.parent {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of registered kinds.
func (h *Hierarchy) Len() int { return len(h.parent) }
