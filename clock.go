package riesenrad

import (
	"sync/atomic"
	"time"
)

// TickClock counts frame ticks produced by a timer so that a busy consumer
// catches up on missed ticks instead of losing them
type TickClock struct {
	pending atomic.Int64
	wakeC   chan struct{}
}

func NewTickClock() (clock *TickClock) {
	return &TickClock{
		wakeC: make(chan struct{}, 1),
	}
}

// Tick adds a pending tick and wakes up a waiting consumer
func (clock *TickClock) Tick() {
	clock.pending.Add(1)
	select {
	case clock.wakeC <- struct{}{}:
	default:
	}
}

// Pending is the number of ticks not consumed yet
func (clock *TickClock) Pending() int64 {
	return clock.pending.Load()
}

// Consume takes a single pending tick if there is one
func (clock *TickClock) Consume() bool {
	for {
		pending := clock.pending.Load()
		if pending <= 0 {
			return false
		}
		if clock.pending.CompareAndSwap(pending, pending-1) {
			return true
		}
	}
}

// Wait blocks until a tick was consumed, false is returned when quitC closed
// first
func (clock *TickClock) Wait(quitC <-chan struct{}) bool {
	for {
		if clock.Consume() {
			return true
		}
		select {
		case <-clock.wakeC:
		case <-quitC:
			return false
		}
	}
}

// Run produces a tick every period until quitC is closed
func (clock *TickClock) Run(period time.Duration, quitC <-chan struct{}) {
	tick := time.NewTicker(period)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			clock.Tick()
		case <-quitC:
			return
		}
	}
}
