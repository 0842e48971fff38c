package signals

import "errors"

var (
	// Hierarchy registration errors.
	ErrKindRegistered = errors.New("signals: kind already registered")
	ErrKindUnknown    = errors.New("signals: kind not registered")
	ErrKindReserved   = errors.New("signals: kind name is reserved")
	ErrParentUnknown  = errors.New("signals: parent kind not registered")

	// Option errors.
	ErrNilHierarchy = errors.New("signals: nil hierarchy")
	ErrNilLogger    = errors.New("signals: nil logger")
	ErrNilHooks     = errors.New("signals: nil hook emitter")
)
