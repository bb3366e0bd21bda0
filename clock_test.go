package riesenrad

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickClockConsume(t *testing.T) {
	clock := NewTickClock()
	assert.False(t, clock.Consume())

	for i := 0; i < 5; i++ {
		clock.Tick()
	}
	assert.Equal(t, int64(5), clock.Pending())
	for i := 0; i < 5; i++ {
		assert.True(t, clock.Consume())
	}
	assert.False(t, clock.Consume())
	assert.Equal(t, int64(0), clock.Pending())
}

func TestTickClockWait(t *testing.T) {
	clock := NewTickClock()
	quitC := make(chan struct{})

	clock.Tick()
	assert.True(t, clock.Wait(quitC))

	waitC := make(chan bool)
	go func() {
		waitC <- clock.Wait(quitC)
	}()
	select {
	case <-waitC:
		assert.Fail(t, "wait returned without a tick")
	case <-time.After(20 * time.Millisecond):
	}
	clock.Tick()
	assert.True(t, <-waitC)

	close(quitC)
	assert.False(t, clock.Wait(quitC))
}

func TestTickClockNoLostTicks(t *testing.T) {
	clock := NewTickClock()
	quitC := make(chan struct{})

	const producers, ticks = 4, 1000

	wg := sync.WaitGroup{}
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < ticks; i++ {
				clock.Tick()
			}
		}()
	}

	consumed := 0
	for consumed < producers*ticks {
		if !clock.Wait(quitC) {
			break
		}
		consumed++
	}
	wg.Wait()

	assert.Equal(t, producers*ticks, consumed)
	assert.False(t, clock.Consume())
}

func TestTickClockRun(t *testing.T) {
	clock := NewTickClock()
	quitC := make(chan struct{})
	doneC := make(chan struct{})
	go func() {
		defer close(doneC)
		clock.Run(time.Millisecond, quitC)
	}()

	for i := 0; i < 3; i++ {
		assert.True(t, clock.Wait(quitC))
	}
	close(quitC)
	<-doneC
}
