package animation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xZise/Riesenrad/strip"
)

func TestSnakeGrowthAndApples(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		s := newStrip(t, 30)
		a := NewSnakeAnimation(s, rand.New(rand.NewSource(seed)))
		require.Equal(t, 21, a.maxLength)

		last := a.Length()
		for frames := 0; !a.Finished(); frames++ {
			require.True(t, frames < frameLimit)

			before := a.apples
			if !a.cadence.Due() {
				continue
			}
			if a.Shrinking() {
				a.shrink(s)
				assert.Equal(t, last-1, a.Length())
				last = a.Length()
				continue
			}

			// new apples may only appear outside of the body
			a.placeApples(s)
			for pos := 0; pos < s.Len(); pos++ {
				if a.HasApple(pos) && !before.test(pos) {
					assert.False(t, a.Covers(s, pos), "seed %d apple placed on the body at %d", seed, pos)
				}
			}
			assert.True(t, a.apples.count() <= snakeMaxApples)
			assert.True(t, a.Length()+a.apples.count() <= a.maxLength)

			a.move(s)
			if a.Length() >= a.maxLength {
				a.shrinking = true
			}
			assert.True(t, a.Length() >= last, "seed %d snake shrank while moving", seed)
			assert.True(t, a.Length() <= last+1)
			last = a.Length()
		}
		assert.Equal(t, 0, a.Length())
	}
}

func TestSnakeReachesMaximum(t *testing.T) {
	s := newStrip(t, 30)
	a := NewSnakeAnimation(s, rand.New(rand.NewSource(11)))

	longest := 0
	for frames := 0; !a.Finished(); frames++ {
		require.True(t, frames < frameLimit)
		a.Frame(s)
		if a.Length() > longest {
			longest = a.Length()
		}
	}
	assert.Equal(t, a.maxLength, longest)
	assert.True(t, a.Shrinking())
}

func TestSnakeDrawing(t *testing.T) {
	s := newStrip(t, 10)
	a := SnakeAnimation{
		cadence:   NewFixedPeriod(snakeDelayMs),
		rnd:       rand.New(rand.NewSource(1)),
		length:    3,
		maxLength: 7,
		position:  2,
	}
	a.apples.set(8)

	a.move(s)
	assert.Equal(t, snakeHead, s.Get(2))
	assert.Equal(t, snakeEvenBody, s.Get(3))
	assert.Equal(t, snakeEvenBody, s.Get(4))
	assert.Equal(t, snakeOddBody, s.Get(5))
	assert.Equal(t, snakeApple, s.Get(8))
	assert.Equal(t, 1, a.position)

	// mirrored onto the strip
	s.Clear()
	a.reverse = true
	a.move(s)
	assert.Equal(t, snakeHead, s.Get(s.Mirror(1)))
	assert.Equal(t, snakeApple, s.Get(s.Mirror(8)))
}

func TestSnakeDigestsOnTail(t *testing.T) {
	s := newStrip(t, 10)
	a := SnakeAnimation{
		cadence:   NewFixedPeriod(snakeDelayMs),
		rnd:       rand.New(rand.NewSource(1)),
		length:    3,
		maxLength: 7,
		position:  5,
	}
	// no random apples, the snake is already as full as it can be fed
	a.apples.set(4)
	a.apples.set(0)
	a.apples.set(1)
	a.apples.set(2)
	require.Equal(t, 7, a.length+a.apples.count())

	// the head reaches 4 and passes it, the apple stays under the body
	a.move(s)
	a.move(s)
	assert.Equal(t, 3, a.Length())
	assert.True(t, a.HasApple(4))

	// after the body passed, the tail leaves 4 and the apple is digested
	for a.position != 0 {
		a.move(s)
	}
	assert.False(t, a.HasApple(4))
	assert.True(t, a.Length() > 3)
}

func TestSnakeShrink(t *testing.T) {
	s := newStrip(t, 10)
	s.FillAll(strip.White)
	a := SnakeAnimation{length: 2, position: 3, shrinking: true}

	a.shrink(s)
	assert.Equal(t, strip.Black, s.Get(5))
	assert.Equal(t, 1, a.Length())
	a.shrink(s)
	assert.Equal(t, strip.Black, s.Get(4))
	assert.True(t, a.Finished())

	a.shrink(s)
	assert.Equal(t, 0, a.Length())
	assert.Equal(t, strip.White, s.Get(3))
}
