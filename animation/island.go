package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	islandDelayMs  = 400
	islandMinWidth = 3
)

// IslandAnimation splits the ring into equally wide islands and fills all of
// them at once, zig-zagging outwards from their centres
//
//	width 6: 3 2 4 1 5 0   marker ends on 6
//	width 5: 2 1 3 0 4     marker ends on -1
type IslandAnimation struct {
	cadence FixedPeriod
	color   strip.Color
	width   int
	marker  int
	delta   int
}

// NewIslandAnimation picks an island width among the divisors of the ring
// length so that all islands are equally wide
func NewIslandAnimation(s *strip.Strip, rnd *rand.Rand) IslandAnimation {
	width, ok := pickDivisor(rnd, s.Len(), islandMinWidth, s.Len()/islandMinWidth)
	if !ok {
		width = s.Len()
	}
	return newIslandAnimation(width, randomColor(rnd))
}

func newIslandAnimation(width int, color strip.Color) IslandAnimation {
	return IslandAnimation{
		cadence: NewFixedPeriod(islandDelayMs),
		color:   color,
		width:   width,
		marker:  width / 2,
		delta:   -1,
	}
}

// Width is the number of pixels in each island
func (a *IslandAnimation) Width() int { return a.width }

func (a *IslandAnimation) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	for offset := a.marker; offset < s.Len(); offset += a.width {
		s.Set(offset, a.color)
	}

	a.marker += a.delta
	if a.delta < 0 {
		a.delta--
	} else {
		a.delta++
	}
	a.delta = -a.delta
	return true
}

// Finished once the marker left the island, which side it leaves on depends
// on the parity of the width
func (a *IslandAnimation) Finished() bool {
	if a.width%2 == 0 {
		return a.marker == a.width
	}
	return a.marker == -1
}

func (a *IslandAnimation) ClearOnStart() bool { return true }
func (a *IslandAnimation) Name() string       { return KindIsland.String() }
