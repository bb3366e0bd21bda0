package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

const (
	snakeDelayMs     = 50
	snakeStartLength = 3
	snakeMaxApples   = 4
)

var (
	snakeHead     = strip.DarkGreen
	snakeOddBody  = strip.Green
	snakeEvenBody = strip.Turquoise
	snakeApple    = strip.Red
)

// SnakeAnimation moves a snake around the ring. It digests the apples it
// passes over and grows until it reaches its maximum length, then it shrinks
// away tail first.
//
// Positions are logical, the head moves towards lower positions and the body
// trails behind it. A pixel's relative index is its distance behind the head,
// the head is 0 and the body covers 1 to length. When reverse is set the
// logical ring is mirrored onto the strip.
type SnakeAnimation struct {
	cadence   FixedPeriod
	rnd       *rand.Rand
	apples    bitset
	reverse   bool
	length    int
	maxLength int
	position  int
	shrinking bool
}

// NewSnakeAnimation starts a short snake at a random position
func NewSnakeAnimation(s *strip.Strip, rnd *rand.Rand) SnakeAnimation {
	return SnakeAnimation{
		cadence:   NewFixedPeriod(snakeDelayMs),
		rnd:       rnd,
		reverse:   randomBool(rnd),
		length:    snakeStartLength,
		maxLength: s.Len() / 4 * 3,
		position:  rnd.Intn(s.Len()),
	}
}

func (a *SnakeAnimation) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() {
		return false
	}
	if a.shrinking {
		a.shrink(s)
	} else {
		a.move(s)
		if a.length >= a.maxLength {
			a.shrinking = true
		}
	}
	return true
}

func (a *SnakeAnimation) Finished() bool     { return a.length == 0 }
func (a *SnakeAnimation) ClearOnStart() bool { return true }
func (a *SnakeAnimation) Name() string       { return KindSnake.String() }

// Length is the number of body pixels behind the head
func (a *SnakeAnimation) Length() int { return a.length }

// Shrinking reports the snake entered its final phase
func (a *SnakeAnimation) Shrinking() bool { return a.shrinking }

// Covers reports whether the logical position is occupied by the head or body
func (a *SnakeAnimation) Covers(s *strip.Strip, pos int) bool {
	return a.relative(s, pos) <= a.length
}

// HasApple reports whether an apple lies at the logical position
func (a *SnakeAnimation) HasApple(pos int) bool {
	return a.apples.test(pos)
}

// relative is the distance of the logical position behind the head
func (a *SnakeAnimation) relative(s *strip.Strip, pos int) int {
	return s.Normalize(pos - a.position)
}

func (a *SnakeAnimation) pixel(s *strip.Strip, pos int) int {
	if a.reverse {
		return s.Mirror(pos)
	}
	return pos
}

func (a *SnakeAnimation) placeApples(s *strip.Strip) {
	apples := a.apples.count()
	missing := snakeMaxApples - apples
	// Never offer more food than the snake can eat before it is full
	if unfed := a.maxLength - a.length - apples; unfed < missing {
		missing = unfed
	}
	for ; missing > 0; missing-- {
		pos := a.rnd.Intn(s.Len())
		for a.Covers(s, pos) || a.apples.test(pos) {
			pos = a.rnd.Intn(s.Len())
		}
		a.apples.set(pos)
	}
}

func (a *SnakeAnimation) move(s *strip.Strip) {
	a.placeApples(s)

	for pos := 0; pos < s.Len(); pos++ {
		color := strip.Black
		switch index := a.relative(s, pos); {
		case index == 0:
			color = snakeHead
		case index <= a.length:
			// body segments alternate colour every two pixels
			if ((index-1)>>1)%2 == 0 {
				color = snakeEvenBody
			} else {
				color = snakeOddBody
			}
		case a.apples.test(pos):
			color = snakeApple
		}
		s.Set(a.pixel(s, pos), color)
	}

	a.position = s.Normalize(a.position - 1)

	// The pixel that just dropped off the tail; an apple lying there has been
	// passed by the whole body and is digested, keeping the tail in place
	vacated := s.Normalize(a.position + a.length + 1)
	if a.apples.reset(vacated) {
		a.length++
	}
}

func (a *SnakeAnimation) shrink(s *strip.Strip) {
	if a.length == 0 {
		return
	}
	s.Set(a.pixel(s, a.position+a.length), strip.Black)
	a.length--
}
