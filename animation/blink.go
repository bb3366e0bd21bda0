package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	alternatingIterations = 10
	alternatingDelayMs    = 500

	glitterIterations = 20
	glitterDelayMs    = 50
	// chance out of 256 that a lit glitter pixel goes dark on a step
	glitterExtinguish = 150
)

// AlternatingBlink swaps two colours between the even and odd pixels
type AlternatingBlink struct {
	cadence IterationPeriod
	first   strip.Color
	second  strip.Color
}

// NewAlternatingBlink uses the given colours, when they are equal the second
// one is replaced by black so the blinking stays visible
func NewAlternatingBlink(first, second strip.Color) AlternatingBlink {
	if second == first {
		second = strip.Black
	}
	return AlternatingBlink{
		cadence: NewIterationPeriod(alternatingIterations, alternatingDelayMs),
		first:   first,
		second:  second,
	}
}

// NewRandomAlternatingBlink picks both colours from the general palette
func NewRandomAlternatingBlink(rnd *rand.Rand) AlternatingBlink {
	return NewAlternatingBlink(randomColor(rnd), randomColor(rnd))
}

func (a *AlternatingBlink) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	a.step(s)
	a.cadence.Advance()
	return true
}

func (a *AlternatingBlink) step(s *strip.Strip) {
	parity := int(a.cadence.Iteration() % 2)
	for led := 0; led < s.Len(); led++ {
		if led%2 == parity {
			s.Set(led, a.second)
		} else {
			s.Set(led, a.first)
		}
	}
}

func (a *AlternatingBlink) Finished() bool     { return a.cadence.Finished() }
func (a *AlternatingBlink) ClearOnStart() bool { return true }
func (a *AlternatingBlink) Name() string       { return KindAlternatingBlink.String() }

// GlitterBlink keeps a fixed number of white sparks on the ring, every step a
// random part of them goes dark and is replaced elsewhere
type GlitterBlink struct {
	cadence IterationPeriod
	rnd     *rand.Rand
	target  int
	lit     int
}

// NewGlitterBlink targets a fifth of the ring being lit
func NewGlitterBlink(s *strip.Strip, rnd *rand.Rand) GlitterBlink {
	return GlitterBlink{
		cadence: NewIterationPeriod(glitterIterations, glitterDelayMs),
		rnd:     rnd,
		target:  s.Len() / 5,
	}
}

func (a *GlitterBlink) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	a.step(s)
	a.cadence.Advance()
	return true
}

func (a *GlitterBlink) step(s *strip.Strip) {
	a.lit = 0
	for led := 0; led < s.Len(); led++ {
		if s.Get(led).IsBlack() {
			continue
		}
		if chance(a.rnd, glitterExtinguish) {
			s.Set(led, strip.Black)
		} else {
			a.lit++
		}
	}

	// The first step only thins out whatever was left on the strip
	if a.cadence.Iteration() == 0 {
		return
	}
	for ; a.lit < a.target; a.lit++ {
		led := a.rnd.Intn(s.Len())
		for !s.Get(led).IsBlack() {
			led = (led + 1) % s.Len()
		}
		s.Set(led, strip.White)
	}
}

// Finished requires all iterations to be done and the glitter count to be back
// at its nominal value
func (a *GlitterBlink) Finished() bool {
	return a.cadence.Finished() && a.lit == a.target
}

func (a *GlitterBlink) ClearOnStart() bool { return true }
func (a *GlitterBlink) Name() string       { return KindGlitterBlink.String() }
