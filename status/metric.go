// Package status keeps process-wide runtime counters and gauges. Hot paths
// cache the metric pointer once; reads and writes are atomic afterwards.
package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Counter is a monotonically increasing int64, zero value ready
type Counter struct {
	v atomic.Int64
}

func (c *Counter) Inc()         { c.v.Add(1) }
func (c *Counter) Add(n int64)  { c.v.Add(n) }
func (c *Counter) Value() int64 { return c.v.Load() }

// Gauge holds the last float64 written, zero value ready
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64)  { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Value() float64 { return math.Float64frombits(g.bits.Load()) }

// metricMap creates metrics on first lookup and hands out stable pointers
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *metricMap[T] {
	return &metricMap[T]{items: make(map[string]*T)}
}

func (m *metricMap[T]) get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	return ptr
}

// each visits metrics in name order
func (m *metricMap[T]) each(fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

func (m *metricMap[T]) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
