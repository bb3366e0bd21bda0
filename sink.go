package riesenrad

// This file contains the interfaces between the animation controller and the
// world around it, a source of frame ticks, the displays receiving the strip
// after every step and the store holding the runtime settings

import (
	"github.com/karlmutch/errors"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/strip"
)

// FrameClock blocks until the next frame tick is available. It returns false
// when quitC was closed or the clock stopped producing ticks
type FrameClock interface {
	Wait(quitC <-chan struct{}) bool
}

// DisplaySink pushes the strip contents to a physical or simulated display
type DisplaySink interface {
	Show(s *strip.Strip) (err errors.Error)
}

// SettingsStore is the read side of the runtime settings the controller polls
// between frames
type SettingsStore interface {
	AnimationsEnabled() bool
	EnabledKinds() animation.KindSet
	// TakeNextRequest returns true once for every request to skip the
	// current animation
	TakeNextRequest() bool
	StaticLight() (color strip.Color, on bool)
}

// BrightnessSource supplies the global brightness applied by display sinks
type BrightnessSource interface {
	Brightness() uint8
}

type multiSink []DisplaySink

// MultiSink shows the strip on every sink in turn, the first failure is
// returned after all sinks were updated
func MultiSink(sinks ...DisplaySink) DisplaySink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return multiSink(sinks)
}

func (sinks multiSink) Show(s *strip.Strip) (err errors.Error) {
	for _, sink := range sinks {
		if errShow := sink.Show(s); errShow != nil && err == nil {
			err = errShow
		}
	}
	return err
}
