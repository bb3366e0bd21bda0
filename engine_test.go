package riesenrad

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/karlmutch/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/model"
	"github.com/xZise/Riesenrad/strip"
)

type countingSink struct {
	shows atomic.Int64
}

func (sink *countingSink) Show(s *strip.Strip) (err errors.Error) {
	sink.shows.Add(1)
	return nil
}

func TestEngineStartInvalidLength(t *testing.T) {
	quitC := make(chan struct{})
	defer close(quitC)

	engine := NewEngine(nil)
	_, err := engine.Start(EngineConfig{LEDs: 3, Tick: time.Millisecond}, []DisplaySink{&countingSink{}}, nil, quitC)
	assert.Error(t, err)
}

func TestEngineNowPlaying(t *testing.T) {
	quitC := make(chan struct{})
	defer close(quitC)

	settings := NewSettings()
	settings.SetEnabledKinds(animation.NewKindSet(animation.KindIsland))
	engine := NewEngine(settings)
	sink := &countingSink{}

	subscribeC, err := engine.Start(EngineConfig{LEDs: 30, Tick: time.Millisecond, Seed: 3}, []DisplaySink{sink}, nil, quitC)
	require.NoError(t, err)

	nowPlayingC := make(chan *model.NowPlaying, 4)
	subscribe(subscribeC, nowPlayingC)

	// skip until a message arrives that was sent after the subscription
	var msg *model.NowPlaying
	assert.Eventually(t, func() bool {
		settings.RequestNext()
		select {
		case msg = <-nowPlayingC:
			return true
		default:
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)
	require.NotNil(t, msg)
	assert.True(t, msg.Playing)
	assert.Equal(t, "Islands", msg.Name)

	settings.SetAnimationsEnabled(false)
	assert.Eventually(t, func() bool {
		select {
		case msg = <-nowPlayingC:
			return !msg.Playing
		default:
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return sink.shows.Load() > 0 && engine.Metrics.Counts()["idle"] > 0
	}, 5*time.Second, 5*time.Millisecond)
}
