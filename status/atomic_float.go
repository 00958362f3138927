package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as bits in an atomic.Uint64, since
// the standard library has no atomic.Float64. The zero value reads as 0.0
// and needs no initialization.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val, discarding whatever was there before.
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the current value.
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta to the current value via a compare-and-swap retry loop and
// returns the result.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		newVal := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(newVal)) {
			return newVal
		}
	}
}