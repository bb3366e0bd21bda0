package riesenrad

import (
	"math/rand"
	"testing"
	"time"

	"github.com/launchdarkly/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/strip"
)

func TestMetricsCounts(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry)
	assert.Equal(t, registry, m.Registry())

	counts := m.Counts()
	for _, name := range []string{"frames", "steps", "shows", "show.errors", "animations.started",
		"animations.finished", "animations.skipped", "idle"} {
		value, isPresent := counts[name]
		assert.True(t, isPresent, name)
		assert.Equal(t, int64(0), value, name)
	}

	s, err := strip.New(30)
	require.NoError(t, err)
	pool := &animation.Pool{}
	m.animationStarted(pool.Create(animation.KindSnake, s, rand.New(rand.NewSource(1))))
	m.animationStarted(pool.Create(animation.KindSnake, s, rand.New(rand.NewSource(2))))
	m.show(time.Now(), true)
	m.show(time.Now(), false)

	counts = m.Counts()
	assert.Equal(t, int64(2), counts["animations.started"])
	assert.Equal(t, int64(2), counts["animations.Snake"])
	assert.Equal(t, int64(2), counts["shows"])
	assert.Equal(t, int64(1), counts["show.errors"])
}

func TestMetricsLog(t *testing.T) {
	m := NewMetrics(nil)
	kv := m.Log()
	require.Len(t, kv, 16)
	assert.Equal(t, "animations.finished", kv[0])

	m.show(time.Now(), false)
	kv = m.Log()
	require.Len(t, kv, 20)
	assert.Equal(t, "show.micros.p50", kv[16])
	assert.Equal(t, "show.micros.max", kv[18])
}
