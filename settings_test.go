package riesenrad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/model"
	"github.com/xZise/Riesenrad/strip"
)

func TestSettingsDefaults(t *testing.T) {
	settings := NewSettings()
	assert.True(t, settings.AnimationsEnabled())
	assert.Equal(t, animation.AllKinds, settings.EnabledKinds())
	assert.Equal(t, uint8(DefaultBrightness), settings.Brightness())
	_, on := settings.StaticLight()
	assert.False(t, on)
	assert.False(t, settings.TakeNextRequest())
}

func TestSettingsNextRequest(t *testing.T) {
	settings := NewSettings()
	settings.RequestNext()
	settings.RequestNext()
	assert.True(t, settings.TakeNextRequest())
	assert.False(t, settings.TakeNextRequest())
}

func TestSettingsKinds(t *testing.T) {
	settings := NewSettings()
	settings.SetKindEnabled(animation.KindSnake, false)
	assert.False(t, settings.EnabledKinds().Has(animation.KindSnake))
	assert.Equal(t, int(animation.NumKinds)-1, settings.EnabledKinds().Count())

	settings.SetKindEnabled(animation.KindSnake, true)
	assert.Equal(t, animation.AllKinds, settings.EnabledKinds())

	settings.SetEnabledKinds(animation.KindSet(0xffffffff))
	assert.Equal(t, animation.AllKinds, settings.EnabledKinds())
}

func TestSettingsSnapshotApply(t *testing.T) {
	settings := NewSettings()
	settings.SetKindEnabled(animation.KindRotation, false)
	settings.SetStaticLight(strip.Wheat, true)
	settings.SetBrightness(200)

	snapshot := settings.Snapshot()
	assert.True(t, snapshot.AnimationsEnabled)
	assert.Equal(t, uint8(200), snapshot.Brightness)
	assert.Equal(t, model.StaticLight{On: true, Color: "#f5deb3"}, snapshot.StaticLight)
	assert.Len(t, snapshot.Animations, int(animation.NumKinds))
	assert.False(t, snapshot.Animations["Rotation"])
	assert.True(t, snapshot.Animations["Snake"])

	other := NewSettings()
	require.NoError(t, other.Apply(snapshot))
	assert.Equal(t, snapshot, other.Snapshot())
}

func TestSettingsApplyPartial(t *testing.T) {
	settings := NewSettings()
	err := settings.Apply(&model.Settings{
		AnimationsEnabled: false,
		Brightness:        10,
		StaticLight:       model.StaticLight{On: true, Color: "FF0000"},
		Animations:        map[string]bool{"snake": false, "Islands": true},
	})
	require.NoError(t, err)

	assert.False(t, settings.AnimationsEnabled())
	assert.Equal(t, animation.AllKinds.Without(animation.KindSnake), settings.EnabledKinds())
	color, on := settings.StaticLight()
	assert.True(t, on)
	assert.Equal(t, strip.Red, color)
}

func TestSettingsApplyInvalid(t *testing.T) {
	settings := NewSettings()

	err := settings.Apply(&model.Settings{
		StaticLight: model.StaticLight{Color: "#FFFFFF"},
		Animations:  map[string]bool{"Fireworks": true},
	})
	assert.Error(t, err)

	err = settings.Apply(&model.Settings{
		StaticLight: model.StaticLight{Color: "orange"},
	})
	assert.Error(t, err)

	// nothing was applied
	assert.True(t, settings.AnimationsEnabled())
	assert.Equal(t, animation.AllKinds, settings.EnabledKinds())
}
