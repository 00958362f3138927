package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Registry is the metrics facade a host application hands to console.Buffer
// and loop.Game: each caches the Registry pointer once at construction and
// then looks up named counters/gauges (console.draw_calls, loop.ticks, ...)
// by key on every call, writing straight to the atomic behind the returned
// pointer.
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types.
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every registered metric as one line of space-separated
// "key=value" pairs, sorted together across all metric types, for a host
// to log on exit. Returns "" when TotalCount is 0.
func (r *Registry) Summary() string {
	if r.TotalCount() == 0 {
		return ""
	}

	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%g", key, ptr.Get()))
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, ptr.Load()))
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%q", key, ptr.Load()))
	})

	sort.Strings(lines)
	out := lines[0]
	for _, l := range lines[1:] {
		out += " " + l
	}
	return out
}