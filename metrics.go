package riesenrad

import (
	"sort"
	"time"

	"github.com/launchdarkly/go-metrics"

	"github.com/xZise/Riesenrad/animation"
)

// Metrics counts what the controller does, all values live in a go-metrics
// registry so they can be logged or exported together
type Metrics struct {
	registry metrics.Registry

	frames     metrics.Counter
	steps      metrics.Counter
	shows      metrics.Counter
	showErrors metrics.Counter
	started    metrics.Counter
	finished   metrics.Counter
	skipped    metrics.Counter
	idle       metrics.Counter
	showTime   metrics.Histogram
}

func NewMetrics(registry metrics.Registry) (m *Metrics) {
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &Metrics{
		registry:   registry,
		frames:     metrics.GetOrRegisterCounter("frames", registry),
		steps:      metrics.GetOrRegisterCounter("steps", registry),
		shows:      metrics.GetOrRegisterCounter("shows", registry),
		showErrors: metrics.GetOrRegisterCounter("show.errors", registry),
		started:    metrics.GetOrRegisterCounter("animations.started", registry),
		finished:   metrics.GetOrRegisterCounter("animations.finished", registry),
		skipped:    metrics.GetOrRegisterCounter("animations.skipped", registry),
		idle:       metrics.GetOrRegisterCounter("idle", registry),
		showTime:   metrics.GetOrRegisterHistogram("show.micros", registry, metrics.NewExpDecaySample(1028, 0.015)),
	}
}

func (m *Metrics) Registry() metrics.Registry {
	return m.registry
}

func (m *Metrics) animationStarted(a animation.Animation) {
	m.started.Inc(1)
	metrics.GetOrRegisterCounter("animations."+a.Name(), m.registry).Inc(1)
}

func (m *Metrics) show(start time.Time, failed bool) {
	m.shows.Inc(1)
	if failed {
		m.showErrors.Inc(1)
	}
	m.showTime.Update(time.Since(start).Microseconds())
}

// Counts returns the value of every counter in the registry
func (m *Metrics) Counts() (counts map[string]int64) {
	counts = map[string]int64{}
	m.registry.Each(func(name string, i interface{}) {
		if counter, ok := i.(metrics.Counter); ok {
			counts[name] = counter.Count()
		}
	})
	return counts
}

// Log lists the counters in a stable order as key value pairs for a
// structured logger
func (m *Metrics) Log() (kv []interface{}) {
	counts := m.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kv = append(kv, name, counts[name])
	}
	snapshot := m.showTime.Snapshot()
	if snapshot.Count() != 0 {
		kv = append(kv, "show.micros.p50", snapshot.Percentile(0.5), "show.micros.max", snapshot.Max())
	}
	return kv
}
