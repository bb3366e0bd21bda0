/*
Package animation contains the generative lighting effects played on the ring
together with the single slot pool the scheduler constructs them into.

Every effect is driven one base tick at a time through Frame. An effect decides
on its own cadence whether enough ticks have accumulated to perform a step,
mutates the strip when it does, and reports whether the strip needs to be
flushed to the display.
*/
package animation

import (
	"github.com/xZise/Riesenrad/strip"
)

// Animation is the contract shared by all the effect kinds
type Animation interface {
	// Frame is called once per base tick. Returns true if a step modified the
	// strip and a refresh of the display is due.
	Frame(s *strip.Strip) bool
	// Finished reports that the effect is complete. It is checked after every
	// Frame call and has no side effects.
	Finished() bool
	// ClearOnStart asks the scheduler to blank the strip before the first frame
	ClearOnStart() bool
	// Name identifies the effect for the now-playing observers
	Name() string
}

// availableColors is the general purpose palette of the ring
var availableColors = [...]strip.Color{strip.Red, strip.Yellow, strip.Green, strip.Ivory}
