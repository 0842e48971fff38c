package signals

// handlerEntry pairs a handler with the subscription token issued for it.
// Tokens, not function values, are the removal identity: Go functions are
// not comparable.
type handlerEntry struct {
	sub Subscription
	fn  Handler
}

// registry holds the ordered handler list and mute flag for one kind.
// Handlers fire in registration order; the same function subscribed twice
// holds two entries and fires twice per send.
type registry struct {
	handlers []handlerEntry
	muted    bool
}

func newRegistry() *registry {
	return &registry{}
}

// add appends a handler under the given subscription token.
func (r *registry) add(sub Subscription, fn Handler) {
	r.handlers = append(r.handlers, handlerEntry{sub: sub, fn: fn})
}

// remove deletes the entry with the given token, preserving the relative
// order of the remainder. Returns false if no entry matched; removing an
// absent token is a no-op, not an error.
func (r *registry) remove(sub Subscription) bool {
	for i, e := range r.handlers {
		if e.sub == sub {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// mute sets the mute flag. Returns false if already muted.
func (r *registry) mute() bool {
	if r.muted {
		return false
	}
	r.muted = true
	return true
}

// unmute clears the mute flag. Returns false if already unmuted.
func (r *registry) unmute() bool {
	if !r.muted {
		return false
	}
	r.muted = false
	return true
}

// handle invokes every registered handler in order with s, unless muted.
// Returns the number of handlers invoked and whether the level was muted.
//
// Iteration runs over a snapshot taken before the first invocation, so a
// handler that subscribes or unsubscribes during delivery affects the next
// send, never the current one.
func (r *registry) handle(s Signal) (invoked int, muted bool) {
	if r.muted {
		return 0, true
	}
	if len(r.handlers) == 0 {
		return 0, false
	}
	snapshot := make([]handlerEntry, len(r.handlers))
	copy(snapshot, r.handlers)
	for _, e := range snapshot {
		e.fn(s)
	}
	return len(snapshot), false
}

// len returns the number of registered handlers.
func (r *registry) len() int { return len(r.handlers) }
