package riesenrad

import (
	"sync"
	"time"

	"github.com/mgutz/logxi"

	"github.com/xZise/Riesenrad/model"
)

type subscriptions struct {
	subs []chan *model.NowPlaying
	sync.Mutex
}

// startFanOut implements a broadcast mechanism for accepting now playing
// messages and relaying them to subscribers. The function returns a single
// channel to which messages get sent and a channel that can be used to add
// listeners. Subscribers that do not accept a message within the timeout
// miss it, subscribers that closed their channel are dropped
func startFanOut(timeout time.Duration, quitC <-chan struct{}) (inC chan *model.NowPlaying, subC chan chan *model.NowPlaying) {

	inC = make(chan *model.NowPlaying, 1)
	subC = make(chan chan *model.NowPlaying, 1)

	logger := logxi.New("fanout")
	subs := &subscriptions{
		subs: []chan *model.NowPlaying{},
	}

	go func(quitC <-chan struct{}) {
		defer logger.Debug("fanout stopped")
		for {
			select {
			case <-quitC:
				return
			case sub := <-subC:
				if nil != sub {
					subs.Lock()
					subs.subs = append(subs.subs, sub)
					subs.Unlock()
					logger.Debug("subscription added", "count", len(subs.subs))
				}
			case msg := <-inC:
				// The subscriptions are notified of a message and are groomed out
				// on unrecoverable failures using https://github.com/golang/go/wiki/SliceTricks#filtering-without-allocating
				subs.Lock()
				newSubs := subs.subs[:0]
				for _, ch := range subs.subs {
					if send(ch, msg.DeepCopy(), timeout) {
						newSubs = append(newSubs, ch)
						continue
					}
					logger.Debug("subscription dropped failed to send")
				}
				subs.subs = newSubs
				subs.Unlock()
			}
		}
	}(quitC)

	return inC, subC
}

// send returns false when the subscriber closed its channel
func send(ch chan *model.NowPlaying, msg *model.NowPlaying, timeout time.Duration) (alive bool) {
	defer func() {
		if r := recover(); r != nil {
			alive = false
		}
	}()

	select {
	case ch <- msg:
	case <-time.After(timeout):
	}
	return true
}
