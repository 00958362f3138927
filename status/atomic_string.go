package status

import (
	"sync/atomic"
)

// MaxStringLen bounds stored strings; registries are meant for short status
// tags (a backend name, a connection state), not arbitrary log messages.
const MaxStringLen = 20

// AtomicString is a string gauge. The zero value reads as "" and needs no
// initialization.
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets val, truncating to MaxStringLen if needed.
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value, or "" if Store was never called.
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}