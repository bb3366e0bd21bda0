package animation

import (
	"strings"
)

// Kind identifies one of the effect algorithms
type Kind uint8

const (
	KindAlternatingBlink Kind = iota
	KindGlitterBlink
	KindSnake
	KindIsland
	KindMove
	KindSprinkle
	KindFallingStacks
	KindRotation

	// NumKinds is the size of the closed set of kinds
	NumKinds
)

var kindNames = [NumKinds]string{
	KindAlternatingBlink: "AlternatingBlink",
	KindGlitterBlink:     "GlitterBlink",
	KindSnake:            "Snake",
	KindIsland:           "Islands",
	KindMove:             "Move",
	KindSprinkle:         "Sprinkle",
	KindFallingStacks:    "Stacking",
	KindRotation:         "Rotation",
}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds lists every kind in selection order
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind looks a kind up by its name, ignoring case
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return NumKinds, false
}

// KindSet is a bitmap with one bit per kind, it fits into a single word so it
// can be shared between goroutines atomically
type KindSet uint32

// AllKinds has every kind enabled
const AllKinds = KindSet(1<<NumKinds - 1)

// NewKindSet builds a set from the given kinds
func NewKindSet(kinds ...Kind) (set KindSet) {
	for _, k := range kinds {
		set = set.With(k)
	}
	return set
}

// Has reports whether kind is in the set
func (set KindSet) Has(k Kind) bool {
	return k < NumKinds && set&(1<<k) != 0
}

// With returns the set including kind
func (set KindSet) With(k Kind) KindSet {
	if k >= NumKinds {
		return set
	}
	return set | 1<<k
}

// Without returns the set excluding kind
func (set KindSet) Without(k Kind) KindSet {
	return set &^ (1 << k)
}

// Count is the number of enabled kinds
func (set KindSet) Count() (count int) {
	for k := Kind(0); k < NumKinds; k++ {
		if set.Has(k) {
			count++
		}
	}
	return count
}

// Nth returns the selected-th enabled kind. The kinds are walked in order and
// the counter is only decremented on enabled ones, so every index in
// [0, Count()) maps onto exactly one enabled kind.
func (set KindSet) Nth(selected int) (Kind, bool) {
	for k := Kind(0); k < NumKinds; k++ {
		if !set.Has(k) {
			continue
		}
		if selected == 0 {
			return k, true
		}
		selected--
	}
	return NumKinds, false
}

func (set KindSet) String() string {
	names := make([]string, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		if set.Has(k) {
			names = append(names, k.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
