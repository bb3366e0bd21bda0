package animation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xZise/Riesenrad/strip"
)

const frameLimit = 1000000

func newStrip(t *testing.T, n int) *strip.Strip {
	s, err := strip.New(n)
	require.NoError(t, err)
	return s
}

// runToEnd drives the effect the way the scheduler does, checking Finished
// after every frame, and returns the number of frames and steps it took
func runToEnd(t *testing.T, a Animation, s *strip.Strip) (frames int, steps int) {
	if a.ClearOnStart() {
		s.Clear()
	}
	for !a.Finished() {
		require.True(t, frames < frameLimit, "%s did not finish after %d frames", a.Name(), frames)
		if a.Frame(s) {
			steps++
		}
		frames++
	}
	return frames, steps
}

func TestEveryKindTerminates(t *testing.T) {
	for _, n := range []int{strip.MinLen, 13, 30, 31, 64, strip.MaxLen} {
		for seed := int64(0); seed < 8; seed++ {
			s := newStrip(t, n)
			rnd := rand.New(rand.NewSource(seed))
			pool := &Pool{}
			for _, kind := range Kinds() {
				a := pool.Create(kind, s, rnd)
				require.NotNil(t, a)
				runToEnd(t, a, s)
				assert.True(t, a.Finished(), "%s on %d leds seed %d", kind, n, seed)
				assert.Equal(t, a.Finished(), a.Finished())
			}
		}
	}
}

func TestClearOnStart(t *testing.T) {
	s := newStrip(t, 30)
	rnd := rand.New(rand.NewSource(1))
	pool := &Pool{}
	for _, kind := range Kinds() {
		a := pool.Create(kind, s, rnd)
		assert.Equal(t, kind != KindRotation, a.ClearOnStart(), kind.String())
		assert.Equal(t, kind.String(), a.Name())
	}
}

func TestAlternatingBlink(t *testing.T) {
	s := newStrip(t, 30)
	a := NewAlternatingBlink(strip.Red, strip.Blue)
	cadence := int(a.cadence.Period())
	assert.Equal(t, 50, cadence)

	for i := 0; i < cadence-1; i++ {
		assert.False(t, a.Frame(s))
	}
	assert.Equal(t, 0, s.CountLit())

	// iteration 0
	assert.True(t, a.Frame(s))
	assert.Equal(t, strip.Blue, s.Get(0))
	assert.Equal(t, strip.Red, s.Get(1))
	assert.Equal(t, strip.Blue, s.Get(28))
	assert.Equal(t, strip.Red, s.Get(29))
	assert.False(t, a.Finished())

	// iteration 1 inverts the pattern
	for i := 0; i < cadence-1; i++ {
		assert.False(t, a.Frame(s))
	}
	assert.True(t, a.Frame(s))
	assert.Equal(t, strip.Red, s.Get(0))
	assert.Equal(t, strip.Blue, s.Get(1))

	frames, steps := runToEnd(t, &a, s)
	assert.Equal(t, 8, steps)
	assert.Equal(t, 8*cadence, frames)
	assert.True(t, a.Finished())
}

func TestAlternatingBlinkSameColors(t *testing.T) {
	s := newStrip(t, 10)
	a := NewAlternatingBlink(strip.Green, strip.Green)
	_, steps := runToEnd(t, &a, s)
	assert.Equal(t, alternatingIterations, steps)
	// the last iteration (9) has odd parity
	assert.Equal(t, strip.Green, s.Get(0))
	assert.Equal(t, strip.Black, s.Get(1))
}

func TestGlitterBlink(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newStrip(t, 30)
		a := NewGlitterBlink(s, rand.New(rand.NewSource(seed)))
		require.Equal(t, 6, a.target)

		s.Clear()
		steps := 0
		for !a.Finished() {
			if a.Frame(s) {
				if a.cadence.Iteration() > 1 {
					assert.Equal(t, a.target, s.CountLit(), "seed %d step %d", seed, steps)
				}
				steps++
			}
			require.True(t, steps <= glitterIterations)
		}
		assert.Equal(t, glitterIterations, steps)
		assert.Equal(t, a.target, s.CountLit())
		for _, c := range s.Pixels() {
			assert.True(t, c == strip.Black || c == strip.White)
		}
	}
}
