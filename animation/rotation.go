package animation

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/xZise/Riesenrad/strip"
)

const (
	rotationDelayMs = 50
	// RotationCount is the number of full turns, the last one fades to black
	RotationCount       = 5
	rotationMaxMultiply = 3
)

// Palette is an ordered list of colours painted as sections onto the ring
type Palette []strip.Color

var (
	paletteMonochrome Palette
	paletteBlues      Palette
	paletteAvailable  = Palette(availableColors[:])

	// Palettes are the built in colour sets RotationAnimation picks from
	Palettes []Palette
)

func init() {
	hex := func(codes ...string) (p Palette) {
		for _, code := range codes {
			c, _ := colorful.Hex(code)
			p = append(p, strip.FromColorful(c))
		}
		return p
	}
	paletteMonochrome = hex("#FFFFFF", "#000000")
	paletteBlues = hex("#87CEEB", "#4169E1", "#0000FF")

	Palettes = []Palette{paletteMonochrome, paletteBlues, paletteAvailable}
}

// RotationAnimation paints coloured sections onto the ring and turns them
// around it a few times
type RotationAnimation struct {
	cadence FixedPeriod
	steps   int
	length  int
}

// NewRandomRotation picks one of the built in palettes, a section multiplier
// and whether the sections are solid or gradients
func NewRandomRotation(s *strip.Strip, rnd *rand.Rand) RotationAnimation {
	palette := Palettes[rnd.Intn(len(Palettes))]
	return NewRotationAnimation(s, rnd, palette, rnd.Intn(rotationMaxMultiply)+1, randomBool(rnd))
}

// NewRotationAnimation paints the initial sections directly onto the strip,
// the first pixel's section is picked at random from the palette
func NewRotationAnimation(s *strip.Strip, rnd *rand.Rand, palette Palette, multiply int, solid bool) RotationAnimation {
	paintSections(s, palette, multiply, solid, rnd.Intn(len(palette)))
	return RotationAnimation{
		cadence: NewFixedPeriod(rotationDelayMs),
		steps:   RotationCount * s.Len(),
		length:  s.Len(),
	}
}

func paintSections(s *strip.Strip, palette Palette, multiply int, solid bool, colorOffset int) {
	n := s.Len()
	sections := multiply * len(palette)
	if sections > n {
		sections = n
	}
	width := n / sections

	offset := 0
	for section := sections - 1; section >= 0; section-- {
		length := width
		if section == 0 {
			length = n - offset
		}
		color := palette[(colorOffset+section)%len(palette)]
		if solid {
			s.Fill(offset, length, color)
		} else {
			next := palette[(colorOffset+section+1)%len(palette)]
			s.FillGradient(offset, length, next, color)
		}
		offset += width
	}
}

// Remaining is the number of steps left
func (a *RotationAnimation) Remaining() int { return a.steps }

func (a *RotationAnimation) Frame(s *strip.Strip) bool {
	if !a.cadence.Due() || a.steps == 0 {
		return false
	}
	a.steps--
	if a.steps < a.length {
		s.ShiftLeft(strip.Black)
	} else {
		s.RotateLeft(1)
	}
	return true
}

func (a *RotationAnimation) Finished() bool { return a.steps == 0 }

// ClearOnStart is false, the constructor already painted the initial state
func (a *RotationAnimation) ClearOnStart() bool { return false }
func (a *RotationAnimation) Name() string       { return KindRotation.String() }
