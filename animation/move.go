package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	moveDelayMs = 100
	// the comet fades out over the last iterations
	moveFadeIterations = 4
)

var (
	moveHead  = strip.Red
	moveTrail = strip.Wheat
)

// MoveAnimation runs a comet once around the ring, fading it out at the end
type MoveAnimation struct {
	cadence IterationPeriod
	start   int
	reverse bool
	trail   int
}

// NewMoveAnimation starts the comet at a random position and direction
func NewMoveAnimation(s *strip.Strip, rnd *rand.Rand) MoveAnimation {
	return newMoveAnimation(s, rnd.Intn(s.Len()), randomBool(rnd))
}

func newMoveAnimation(s *strip.Strip, start int, reverse bool) MoveAnimation {
	return MoveAnimation{
		cadence: NewIterationPeriod(uint16(s.Len()+1), moveDelayMs),
		start:   start,
		reverse: reverse,
		trail:   s.Len()/10 + 1,
	}
}

func (a *MoveAnimation) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	a.step(s)
	a.cadence.Advance()
	return true
}

func (a *MoveAnimation) step(s *strip.Strip) {
	s.Clear()

	remaining := int(a.cadence.Bound()) - int(a.cadence.Iteration()) - 1
	if remaining <= 0 {
		return
	}

	trail := a.trail
	if remaining-1 < trail {
		trail = remaining - 1
	}
	head := a.start + remaining
	for i := 0; i < trail; i++ {
		color := moveTrail
		if i == 0 {
			color = moveHead
		}
		s.Set(s.OffsetIndex(head, i, a.reverse), color)
	}

	if remaining < moveFadeIterations {
		s.FadeToBlackBy(uint8(255 / remaining))
	}
}

func (a *MoveAnimation) Finished() bool     { return a.cadence.Finished() }
func (a *MoveAnimation) ClearOnStart() bool { return true }
func (a *MoveAnimation) Name() string       { return KindMove.String() }
