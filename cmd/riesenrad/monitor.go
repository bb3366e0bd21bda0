package main

import (
	"github.com/xZise/Riesenrad/model"
)

// This file implements a monitor that subscribes to and logs the now playing
// events using event subscription

func runMonitoring(subscribeC chan chan *model.NowPlaying, quitC <-chan struct{}) {

	nowPlayingC := make(chan *model.NowPlaying, 1)
	subscribeC <- nowPlayingC

	for {
		select {
		case msg := <-nowPlayingC:
			if msg.Playing {
				logger.Info("now playing", "animation", msg.Name, "sequence", msg.Sequence)
			} else {
				logger.Info("no animation playing", "sequence", msg.Sequence)
			}
		case <-quitC:
			return
		}
	}
}
