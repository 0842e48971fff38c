package signals

// Config holds tunables for a Dispatcher.
type Config struct {
	// PoolCapacity is the initial capacity of each per-kind free list.
	PoolCapacity int

	// DebugChecks enables assertions for usage-contract violations that
	// the nominal path leaves undetected, currently double release of a
	// signal instance. Violations panic. Off by default.
	DebugChecks bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PoolCapacity: 8,
	}
}
