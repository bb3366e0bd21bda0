package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	sprinkleDelayMs = 50
	// chance out of 256 for a new sprinkle to start on a step
	sprinkleChance  = 100
	sprinkleMinStep = 10
	sprinkleMaxStep = 50
	sprinkleBright  = 0xff
)

// sprinkleState brightens a single pixel from black to white and dims it
// back, the zero value is a dark and inactive sprinkle
type sprinkleState struct {
	led       int
	level     uint8
	levelStep uint8
	brighten  bool
}

func (st *sprinkleState) init(led int, levelStep uint8) {
	st.led = led
	st.levelStep = levelStep
	st.level = 0
	st.brighten = true
}

func (st *sprinkleState) active() bool {
	return st.brighten || st.level > 0
}

// step advances the brightness, returns true when the sprinkle went dark again
func (st *sprinkleState) step(s *strip.Strip) (stopped bool) {
	if !st.active() {
		return false
	}
	if st.brighten {
		if st.level < sprinkleBright-st.levelStep {
			st.level += st.levelStep
		} else {
			st.level = sprinkleBright
			st.brighten = false
		}
	} else {
		if st.level > st.levelStep {
			st.level -= st.levelStep
		} else {
			st.level = 0
			stopped = true
		}
	}
	s.Set(st.led, strip.White.Scale(st.level))
	return stopped
}

// SprinkleAnimation lets pixels light up and fade away independently until a
// fixed number of them has been shown
type SprinkleAnimation struct {
	cadence   FixedPeriod
	rnd       *rand.Rand
	states    [strip.MaxLen / 2]sprinkleState
	slots     int
	active    int
	remaining int
}

// NewSprinkleAnimation allows half the ring to sparkle at once and shows
// twice the ring length sprinkles in total
func NewSprinkleAnimation(s *strip.Strip, rnd *rand.Rand) SprinkleAnimation {
	return SprinkleAnimation{
		cadence:   NewFixedPeriod(sprinkleDelayMs),
		rnd:       rnd,
		slots:     s.Len() / 2,
		remaining: s.Len() * 2,
	}
}

// Active is the number of sprinkles currently shown
func (a *SprinkleAnimation) Active() int { return a.active }

// Remaining is the number of sprinkles still to be shown until completion
func (a *SprinkleAnimation) Remaining() int { return a.remaining }

func (a *SprinkleAnimation) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}

	if a.active < a.slots && a.remaining > a.active && chance(a.rnd, sprinkleChance) {
		if free, ok := a.freeSlot(); ok {
			levelStep := uint8(sprinkleMinStep + a.rnd.Intn(sprinkleMaxStep-sprinkleMinStep))
			a.states[free].init(a.uniqueLed(s), levelStep)
			a.active++
		}
	}

	for i := 0; i < a.slots && a.active > 0; i++ {
		if a.states[i].step(s) {
			a.active--
			a.remaining--
		}
	}
	return true
}

func (a *SprinkleAnimation) freeSlot() (int, bool) {
	for i := 0; i < a.slots; i++ {
		if !a.states[i].active() {
			return i, true
		}
	}
	return 0, false
}

// uniqueLed picks a pixel no active sprinkle is using, there always is one as
// at most half of the ring is active
func (a *SprinkleAnimation) uniqueLed(s *strip.Strip) int {
	for {
		led := a.rnd.Intn(s.Len())
		taken := false
		for i := 0; i < a.slots; i++ {
			if a.states[i].active() && a.states[i].led == led {
				taken = true
				break
			}
		}
		if !taken {
			return led
		}
	}
}

func (a *SprinkleAnimation) Finished() bool     { return a.remaining == 0 }
func (a *SprinkleAnimation) ClearOnStart() bool { return true }
func (a *SprinkleAnimation) Name() string       { return KindSprinkle.String() }
