package riesenrad

// This module wires the animation controller to its collaborators, the tick
// clock, the display sinks, the settings and the now playing broadcast

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/karlmutch/errors"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/model"
	"github.com/xZise/Riesenrad/strip"
)

type EngineConfig struct {
	LEDs int
	Tick time.Duration
	Seed int64
}

type Engine struct {
	Settings *Settings
	Clock    *TickClock
	Metrics  *Metrics

	sequence atomic.Uint64
}

func NewEngine(settings *Settings) (engine *Engine) {
	if settings == nil {
		settings = NewSettings()
	}
	return &Engine{
		Settings: settings,
		Clock:    NewTickClock(),
		Metrics:  NewMetrics(nil),
	}
}

// Start creates the strip and runs the controller, the clock and the now
// playing broadcast until quitC is closed. The returned channel is used to
// subscribe to now playing messages
func (engine *Engine) Start(cfg EngineConfig, sinks []DisplaySink, errorC chan<- errors.Error, quitC <-chan struct{}) (subscribeC chan chan *model.NowPlaying, err errors.Error) {

	s, err := strip.New(cfg.LEDs)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	nowPlayingC, subscribeC := startFanOut(250*time.Millisecond, quitC)

	controller := NewController(s, engine.Clock, MultiSink(sinks...), engine.Settings, rand.New(rand.NewSource(seed)))
	controller.Metrics = engine.Metrics
	controller.NowPlaying = func(a animation.Animation) {
		msg := engine.nowPlaying(a)
		select {
		case nowPlayingC <- msg:
		case <-time.After(100 * time.Millisecond):
			controller.Logger.Debug("now playing dropped", "sequence", msg.Sequence)
		}
	}

	go engine.Clock.Run(cfg.Tick, quitC)
	go controller.Run(quitC)

	return subscribeC, nil
}

func (engine *Engine) nowPlaying(a animation.Animation) (msg *model.NowPlaying) {
	msg = &model.NowPlaying{
		Sequence: engine.sequence.Add(1),
		Started:  time.Now(),
	}
	if a != nil {
		msg.Playing = true
		msg.Name = a.Name()
	}
	return msg
}
