package model

import (
	"encoding/json"
	"time"
)

// NowPlaying is broadcast every time the engine starts or stops an animation,
// Playing is false while no animation is running
type NowPlaying struct {
	Sequence uint64    `json:"sequence"`
	Playing  bool      `json:"playing"`
	Name     string    `json:"name,omitempty"`
	Started  time.Time `json:"started"`
}

// DeepCopy deepcopies a to b using json marshaling
func (msg *NowPlaying) DeepCopy() (cpy *NowPlaying) {
	cpy = &NowPlaying{}

	byt, _ := json.Marshal(msg)
	json.Unmarshal(byt, cpy)
	return cpy
}
