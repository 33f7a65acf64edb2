package status

import (
	"go.uber.org/zap"
)

// Metric names recorded by the main loop
const (
	Frames        = "frames"
	FPS           = "fps"
	FrameMillis   = "frame_ms"
	Actions       = "actions"
	WallBumps     = "wall_bumps"
	ItemsTaken    = "items_collected"
	Regenerations = "regenerations"
	Reloads       = "config_reloads"
)

type Registry struct {
	counters *metricMap[Counter]
	gauges   *metricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		counters: newMetricMap[Counter](),
		gauges:   newMetricMap[Gauge](),
	}
}

// Counter returns the named counter, creating it on first use
func (r *Registry) Counter(name string) *Counter {
	return r.counters.get(name)
}

// Gauge returns the named gauge, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return r.gauges.get(name)
}

// Len is the number of registered metrics
func (r *Registry) Len() int {
	return r.counters.len() + r.gauges.len()
}

// Fields snapshots every metric as zap fields, counters first, each group
// in name order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Len())
	r.counters.each(func(name string, c *Counter) {
		fields = append(fields, zap.Int64(name, c.Value()))
	})
	r.gauges.each(func(name string, g *Gauge) {
		fields = append(fields, zap.Float64(name, g.Value()))
	})
	return fields
}
