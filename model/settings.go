package model

// This module defines the implementation neutral runtime settings of the
// animation engine as they are stored in the settings file

import (
	"encoding/json"
)

type StaticLight struct {
	On    bool   `yaml:"on" json:"on"`
	Color string `yaml:"color" json:"color"` // hex colour, '#' is optional
}

type Settings struct {
	AnimationsEnabled bool            `yaml:"animations_enabled" json:"animationsEnabled"`
	Brightness        uint8           `yaml:"brightness" json:"brightness"`
	StaticLight       StaticLight     `yaml:"static_light" json:"staticLight"`
	Animations        map[string]bool `yaml:"animations" json:"animations"` // keyed by animation name
}

// DeepCopy deepcopies a to b using json marshaling
func (settings *Settings) DeepCopy() (cpy *Settings) {
	cpy = &Settings{}

	byt, _ := json.Marshal(settings)
	json.Unmarshal(byt, cpy)
	return cpy
}
