package riesenrad

// This file contains the animation controller. It owns the strip and the
// single animation slot, selects a random enabled animation, feeds it frame
// ticks and pushes the strip to the display every time the animation made a
// step. While animations are disabled it shows the static light instead

import (
	"math/rand"
	"time"

	"github.com/mgutz/logxi"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/strip"
)

type Controller struct {
	strip    *strip.Strip
	clock    FrameClock
	sink     DisplaySink
	settings SettingsStore
	rnd      *rand.Rand
	pool     animation.Pool

	// NowPlaying, when set, is called with every animation that starts and
	// with nil once no animation is running
	NowPlaying func(a animation.Animation)
	Metrics    *Metrics
	Logger     logxi.Logger

	playing bool
	// blank is set after the empty strip was shown while no kind is enabled
	blank bool
}

func NewController(s *strip.Strip, clock FrameClock, sink DisplaySink, settings SettingsStore, rnd *rand.Rand) (c *Controller) {
	c = &Controller{
		strip:    s,
		clock:    clock,
		sink:     sink,
		settings: settings,
		rnd:      rnd,
		Metrics:  NewMetrics(nil),
		Logger:   logxi.New("controller"),
	}
	c.pool.Released = func(a animation.Animation) {
		c.Logger.Debug("released", "animation", a.Name())
	}
	return c
}

// Run animates the strip until quitC is closed or the clock stops
func (c *Controller) Run(quitC <-chan struct{}) {
	defer c.stop()

	for {
		select {
		case <-quitC:
			return
		default:
		}

		if !c.settings.AnimationsEnabled() {
			if !c.idle(quitC) {
				return
			}
			continue
		}

		kind, isPresent := c.selectKind()
		if !isPresent {
			c.publish(nil)
			c.pool.Release()
			if !c.blank {
				c.strip.Clear()
				c.show()
				c.blank = true
			}
			if !c.clock.Wait(quitC) {
				return
			}
			continue
		}

		if !c.play(kind, quitC) {
			return
		}
	}
}

func (c *Controller) stop() {
	c.pool.Release()
	c.publish(nil)
}

// selectKind draws a uniformly distributed kind from the enabled ones
func (c *Controller) selectKind() (kind animation.Kind, isPresent bool) {
	enabled := c.settings.EnabledKinds()
	count := enabled.Count()
	if count == 0 {
		return animation.NumKinds, false
	}
	selected := c.rnd.Intn(count)
	kind, isPresent = enabled.Nth(selected)

	c.Logger.Debug("selected animation", "index", selected, "enabled", count, "kind", kind.String())
	return kind, isPresent
}

// play runs a single animation until it finished, was skipped or animations
// got disabled. It returns false when the controller has to stop
func (c *Controller) play(kind animation.Kind, quitC <-chan struct{}) bool {
	a := c.pool.Create(kind, c.strip, c.rnd)
	if a == nil {
		return true
	}
	c.blank = false
	c.Metrics.animationStarted(a)
	c.Logger.Info("playing", "animation", a.Name())
	c.publish(a)

	if a.ClearOnStart() {
		c.strip.Clear()
	}

	for {
		if !c.clock.Wait(quitC) {
			return false
		}

		c.Metrics.frames.Inc(1)
		if a.Frame(c.strip) {
			c.Metrics.steps.Inc(1)
			c.show()
		}

		if a.Finished() {
			c.Metrics.finished.Inc(1)
			return true
		}
		if c.settings.TakeNextRequest() {
			c.Metrics.skipped.Inc(1)
			c.Logger.Info("skipped", "animation", a.Name())
			return true
		}
		if !c.settings.AnimationsEnabled() {
			return true
		}
	}
}

// idle shows the static light, or black when it is off, until animations get
// enabled again. It returns false when the controller has to stop
func (c *Controller) idle(quitC <-chan struct{}) bool {
	c.Metrics.idle.Inc(1)
	c.publish(nil)
	c.pool.Release()
	c.blank = false

	// a skip requested while idle has nothing to skip
	c.settings.TakeNextRequest()

	shown, first := strip.Black, true
	for !c.settings.AnimationsEnabled() {
		color := strip.Black
		if static, on := c.settings.StaticLight(); on {
			color = static
		}
		if first || color != shown {
			c.strip.FillAll(color)
			c.show()
			shown, first = color, false
		}

		if !c.clock.Wait(quitC) {
			return false
		}
	}
	return true
}

func (c *Controller) publish(a animation.Animation) {
	if a == nil && !c.playing {
		return
	}
	c.playing = a != nil
	if c.NowPlaying != nil {
		c.NowPlaying(a)
	}
}

func (c *Controller) show() {
	start := time.Now()
	err := c.sink.Show(c.strip)
	c.Metrics.show(start, err != nil)
	if err != nil {
		c.Logger.Warn("show failed", "error", err.Error())
	}
}
