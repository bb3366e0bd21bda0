package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	// MaxStackLength bounds the size of a falling block
	MaxStackLength = 10

	stacksFallMs  = 50
	stacksLandMs  = 700
	stacksWipeMs  = 100
	stacksStartMs = stacksFallMs
)

// FallingStacks drops blocks of coloured pixels around the ring until it is
// filled, then wipes it clean from the centre outwards
type FallingStacks struct {
	cadence DynamicPeriod
	colors  [MaxStackLength]strip.Color
	// start of the stacks on the ring
	offset int
	// number of lit pixels already resting
	stack int
	// position of the falling block, or progress of the wipe
	step         int
	stackLength  int
	stackCount   int
	fallDistance int
	centerNear   int
	centerFar    int
}

// NewFallingStacks sizes the blocks from the divisors of the ring length so
// that they exactly fill it
func NewFallingStacks(s *strip.Strip, rnd *rand.Rand) FallingStacks {
	n := s.Len()
	a := FallingStacks{
		cadence:      NewDynamicPeriod(stacksStartMs),
		offset:       rnd.Intn(n),
		stackLength:  1,
		stackCount:   n,
		fallDistance: 1,
		centerFar:    n / 2,
		centerNear:   n/2 - (1 - n%2),
	}

	hi := MaxStackLength
	if hi > n-1 {
		hi = n - 1
	}
	if length, ok := pickDivisor(rnd, n, 1, hi); ok {
		a.stackLength = length
		a.stackCount = n / length
	}

	// Halving and 2 divide every even block length, so the block always
	// lands exactly on top of the stack
	if a.stackLength%2 == 0 {
		switch rnd.Intn(3) {
		case 1:
			a.fallDistance = a.stackLength / 2
		case 2:
			a.fallDistance = 2
		}
	}

	for i := 0; i < a.stackLength; i++ {
		a.colors[i] = randomColor(rnd)
	}
	return a
}

// StackLength is the number of pixels in each block
func (a *FallingStacks) StackLength() int { return a.stackLength }

// StackCount is the number of blocks filling the ring
func (a *FallingStacks) StackCount() int { return a.stackCount }

// FallDistance is the number of pixels a block moves per step
func (a *FallingStacks) FallDistance() int { return a.fallDistance }

func (a *FallingStacks) wiping(s *strip.Strip) bool {
	return a.stack >= s.Len()
}

func (a *FallingStacks) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	if a.wiping(s) {
		a.wipe(s)
		a.cadence.Next(stacksWipeMs)
	} else {
		a.cadence.Next(a.fall(s))
	}
	return true
}

func (a *FallingStacks) fall(s *strip.Strip) (delayMs uint16) {
	for i := 0; i < a.stackLength; i++ {
		index := a.step + a.offset + i

		// clear the pixels the block moved away from
		if a.step > 0 && a.stackLength-i <= a.fallDistance {
			s.Set(index-a.stackLength, strip.Black)
		}
		s.Set(index, a.colors[(a.stack+i)%a.stackLength])
	}

	a.step += a.fallDistance
	if a.step > s.Len()-a.stack-a.stackLength {
		a.step = 0
		a.stack += a.stackLength
		return stacksLandMs
	}
	return stacksFallMs
}

func (a *FallingStacks) wipe(s *strip.Strip) {
	s.Set(a.offset+a.centerNear-a.step, strip.Black)
	s.Set(a.offset+a.centerFar+a.step, strip.Black)
	a.step++
}

// Finished once the wipe reached both ends of the ring
func (a *FallingStacks) Finished() bool {
	return a.stack >= a.stackLength*a.stackCount && a.step > a.centerNear
}

func (a *FallingStacks) ClearOnStart() bool { return true }
func (a *FallingStacks) Name() string       { return KindFallingStacks.String() }
