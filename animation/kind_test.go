package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds() {
		name := k.String()
		assert.NotEqual(t, "Unknown", name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		parsed, ok := ParseKind(name)
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.Len(t, seen, int(NumKinds))

	k, ok := ParseKind("islands")
	assert.True(t, ok)
	assert.Equal(t, KindIsland, k)

	_, ok = ParseKind("fireworks")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", NumKinds.String())
}

func TestKindSet(t *testing.T) {
	assert.Equal(t, int(NumKinds), AllKinds.Count())

	set := NewKindSet(KindSnake, KindRotation)
	assert.Equal(t, 2, set.Count())
	assert.True(t, set.Has(KindSnake))
	assert.False(t, set.Has(KindMove))
	assert.False(t, set.Has(NumKinds))
	assert.Equal(t, "[Snake Rotation]", set.String())

	set = set.Without(KindSnake).With(KindMove)
	assert.Equal(t, NewKindSet(KindMove, KindRotation), set)
	assert.Equal(t, set, set.With(NumKinds))

	assert.Equal(t, 0, KindSet(0).Count())
}

func TestKindSetNth(t *testing.T) {
	set := NewKindSet(KindGlitterBlink, KindIsland, KindFallingStacks)

	k, ok := set.Nth(0)
	assert.True(t, ok)
	assert.Equal(t, KindGlitterBlink, k)

	k, ok = set.Nth(1)
	assert.True(t, ok)
	assert.Equal(t, KindIsland, k)

	k, ok = set.Nth(2)
	assert.True(t, ok)
	assert.Equal(t, KindFallingStacks, k)

	_, ok = set.Nth(3)
	assert.False(t, ok)

	_, ok = KindSet(0).Nth(0)
	assert.False(t, ok)
}
