package animation

import (
	"math/rand"

	"github.com/xZise/Riesenrad/strip"
)

// randomColor picks one colour of the general palette
func randomColor(rnd *rand.Rand) strip.Color {
	return availableColors[rnd.Intn(len(availableColors))]
}

func randomBool(rnd *rand.Rand) bool {
	return rnd.Intn(2) == 1
}

// chance is true with a probability of threshold/256
func chance(rnd *rand.Rand, threshold int) bool {
	return rnd.Intn(256) < threshold
}

// divisorCount is the number of divisors of n within [lo, hi]
func divisorCount(n, lo, hi int) (count int) {
	for d := lo; d <= hi; d++ {
		if n%d == 0 {
			count++
		}
	}
	return count
}

// pickDivisor selects a uniformly random divisor of n within [lo, hi]. Only
// verified divisors are ever returned, ok is false when the range holds none.
func pickDivisor(rnd *rand.Rand, n, lo, hi int) (divisor int, ok bool) {
	if lo < 1 {
		lo = 1
	}
	count := divisorCount(n, lo, hi)
	if count == 0 {
		return 0, false
	}
	selected := rnd.Intn(count)
	for d := lo; d <= hi; d++ {
		if n%d != 0 {
			continue
		}
		if selected == 0 {
			return d, true
		}
		selected--
	}
	return 0, false
}
