package animation

// The cadence helpers convert the stream of base ticks into steps. Effects
// hold one of them by value and ask it on each frame whether a step is due.

import (
	"time"
)

const (
	// BaseTick is the period of the frame clock driving every effect
	BaseTick = 10 * time.Millisecond

	baseTickMs = uint16(BaseTick / time.Millisecond)
)

// framesFor converts a delay into a whole number of base ticks, never less
// than one
func framesFor(ms uint16) uint16 {
	frames := ms / baseTickMs
	if frames == 0 {
		return 1
	}
	return frames
}

// FixedPeriod signals a step once every period ticks
type FixedPeriod struct {
	period uint16
	ticks  uint16
}

// NewFixedPeriod creates a cadence stepping every ms milliseconds
func NewFixedPeriod(ms uint16) FixedPeriod {
	return FixedPeriod{period: framesFor(ms)}
}

// Due consumes one tick and returns true when the accumulated ticks reached
// the period, the counter then starts over
func (f *FixedPeriod) Due() bool {
	f.ticks++
	if f.ticks < f.period {
		return false
	}
	f.ticks = 0
	return true
}

// Period is the number of ticks between steps
func (f *FixedPeriod) Period() uint16 {
	return f.period
}

// IterationPeriod is a FixedPeriod that counts its steps up to a bound
type IterationPeriod struct {
	FixedPeriod
	iteration uint16
	bound     uint16
}

// NewIterationPeriod creates a cadence of bound steps, one every ms milliseconds
func NewIterationPeriod(bound uint16, ms uint16) IterationPeriod {
	return IterationPeriod{
		FixedPeriod: NewFixedPeriod(ms),
		bound:       bound,
	}
}

// Iteration is the index of the next step
func (it *IterationPeriod) Iteration() uint16 {
	return it.iteration
}

// Bound is the total number of steps
func (it *IterationPeriod) Bound() uint16 {
	return it.bound
}

// Advance records that a step was made
func (it *IterationPeriod) Advance() {
	if it.iteration < it.bound {
		it.iteration++
	}
}

// Finished is true once bound steps were made
func (it *IterationPeriod) Finished() bool {
	return it.iteration >= it.bound
}

// DynamicPeriod is a cadence whose period is chosen by each step for the next
type DynamicPeriod struct {
	FixedPeriod
}

// NewDynamicPeriod creates a cadence whose first step comes after ms milliseconds
func NewDynamicPeriod(ms uint16) DynamicPeriod {
	return DynamicPeriod{FixedPeriod: NewFixedPeriod(ms)}
}

// Next sets the delay before the following step, zero keeps the current one
func (d *DynamicPeriod) Next(ms uint16) {
	if ms != 0 {
		d.period = framesFor(ms)
	}
}
