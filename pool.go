package signals

import "fmt"

// freeList is the per-kind recycling cache of released signal instances.
// It is a plain unbounded stack: Release pushes, Get pops the most recently
// released instance. There is no eviction and no field reset; residual state
// on a reused instance is part of the caller contract.
type freeList struct {
	items []Signal
}

func newFreeList(capacity int) *freeList {
	return &freeList{items: make([]Signal, 0, capacity)}
}

// get pops the most recently released instance. Returns false when empty.
func (f *freeList) get() (Signal, bool) {
	n := len(f.items)
	if n == 0 {
		return nil, false
	}
	s := f.items[n-1]
	f.items[n-1] = nil
	f.items = f.items[:n-1]
	return s, true
}

// put appends an instance, making it eligible for a future get.
func (f *freeList) put(s Signal) {
	f.items = append(f.items, s)
}

// size returns the number of pooled instances.
func (f *freeList) size() int { return len(f.items) }

// assertNotPooled panics if s is already on the free list. Only called when
// Config.DebugChecks is enabled; the nominal path does not guard against
// double release.
func (f *freeList) assertNotPooled(s Signal) {
	for _, pooled := range f.items {
		if pooled == s {
			panic(fmt.Sprintf("signals: double release of %T (kind %q)", s, s.SignalKind()))
		}
	}
}
