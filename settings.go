package riesenrad

// This module holds the runtime settings shared between the animation
// controller and the goroutines changing them, signal handlers and the
// settings file watcher. Every setting is a single atomic word so the
// controller can poll them between frames without locking

import (
	"fmt"
	"sync/atomic"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/model"
	"github.com/xZise/Riesenrad/strip"
)

// DefaultBrightness is roughly an eighth of full brightness
const DefaultBrightness = 30

type Settings struct {
	enabled     atomic.Bool
	kinds       atomic.Uint32
	next        atomic.Bool
	brightness  atomic.Uint32
	staticOn    atomic.Bool
	staticColor atomic.Uint32
}

// NewSettings enables every animation with the default brightness and the
// static light switched off
func NewSettings() (settings *Settings) {
	settings = &Settings{}
	settings.enabled.Store(true)
	settings.kinds.Store(uint32(animation.AllKinds))
	settings.brightness.Store(DefaultBrightness)
	settings.staticColor.Store(strip.White.Packed())
	return settings
}

func (settings *Settings) AnimationsEnabled() bool {
	return settings.enabled.Load()
}

func (settings *Settings) SetAnimationsEnabled(enabled bool) {
	settings.enabled.Store(enabled)
}

func (settings *Settings) EnabledKinds() animation.KindSet {
	return animation.KindSet(settings.kinds.Load())
}

func (settings *Settings) SetEnabledKinds(kinds animation.KindSet) {
	settings.kinds.Store(uint32(kinds & animation.AllKinds))
}

// SetKindEnabled switches a single animation kind on or off
func (settings *Settings) SetKindEnabled(kind animation.Kind, enabled bool) {
	for {
		old := settings.kinds.Load()
		kinds := animation.KindSet(old).Without(kind)
		if enabled {
			kinds = kinds.With(kind)
		}
		if settings.kinds.CompareAndSwap(old, uint32(kinds)) {
			return
		}
	}
}

// RequestNext asks the controller to abandon the current animation after
// its next frame
func (settings *Settings) RequestNext() {
	settings.next.Store(true)
}

func (settings *Settings) TakeNextRequest() bool {
	return settings.next.Swap(false)
}

func (settings *Settings) Brightness() uint8 {
	return uint8(settings.brightness.Load())
}

func (settings *Settings) SetBrightness(brightness uint8) {
	settings.brightness.Store(uint32(brightness))
}

func (settings *Settings) StaticLight() (color strip.Color, on bool) {
	return strip.Unpack(settings.staticColor.Load()), settings.staticOn.Load()
}

func (settings *Settings) SetStaticLight(color strip.Color, on bool) {
	settings.staticColor.Store(color.Packed())
	settings.staticOn.Store(on)
}

// Snapshot copies the current settings into their serializable form
func (settings *Settings) Snapshot() (snapshot *model.Settings) {
	color, on := settings.StaticLight()
	snapshot = &model.Settings{
		AnimationsEnabled: settings.AnimationsEnabled(),
		Brightness:        settings.Brightness(),
		StaticLight: model.StaticLight{
			On:    on,
			Color: color.Hex(),
		},
		Animations: map[string]bool{},
	}
	kinds := settings.EnabledKinds()
	for _, kind := range animation.Kinds() {
		snapshot.Animations[kind.String()] = kinds.Has(kind)
	}
	return snapshot
}

// Apply validates the serialized settings and, only when all of them are
// valid, stores them. Animations missing from the map keep their state
func (settings *Settings) Apply(snapshot *model.Settings) (err errors.Error) {
	color, errGo := strip.ParseHex(snapshot.StaticLight.Color)
	if errGo != nil {
		return errors.Wrap(errGo).With("static_light", snapshot.StaticLight.Color).With("stack", stack.Trace().TrimRuntime())
	}

	kinds := settings.EnabledKinds()
	for name, enabled := range snapshot.Animations {
		kind, isPresent := animation.ParseKind(name)
		if !isPresent {
			errGo := fmt.Errorf("unknown animation %s", name)
			return errors.Wrap(errGo).With("animation", name).With("stack", stack.Trace().TrimRuntime())
		}
		if enabled {
			kinds = kinds.With(kind)
		} else {
			kinds = kinds.Without(kind)
		}
	}

	settings.SetEnabledKinds(kinds)
	settings.SetBrightness(snapshot.Brightness)
	settings.SetStaticLight(color, snapshot.StaticLight.On)
	settings.SetAnimationsEnabled(snapshot.AnimationsEnabled)
	return nil
}
