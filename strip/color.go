package strip

// This file defines the pixel colour type used by the strip and the
// animations together with the named colours of the ring palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single RGB pixel
type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0x00, 0x00, 0x00}
	White     = Color{0xFF, 0xFF, 0xFF}
	Red       = Color{0xFF, 0x00, 0x00}
	Yellow    = Color{0xFF, 0xFF, 0x00}
	Green     = Color{0x00, 0x80, 0x00}
	DarkGreen = Color{0x00, 0x64, 0x00}
	Turquoise = Color{0x40, 0xE0, 0xD0}
	Ivory     = Color{0xFF, 0xFF, 0xF0}
	Wheat     = Color{0xF5, 0xDE, 0xB3}
	SkyBlue   = Color{0x87, 0xCE, 0xEB}
	RoyalBlue = Color{0x41, 0x69, 0xE1}
	Blue      = Color{0x00, 0x00, 0xFF}
)

// IsBlack is true when all channels are off
func (c Color) IsBlack() bool {
	return c == Black
}

// Scale multiplies every channel by (scale+1)/256, so 255 leaves the colour
// untouched and 0 turns it off
func (c Color) Scale(scale uint8) Color {
	s := uint16(scale) + 1
	return Color{
		R: uint8((uint16(c.R) * s) >> 8),
		G: uint8((uint16(c.G) * s) >> 8),
		B: uint8((uint16(c.B) * s) >> 8),
	}
}

// FadeToBlackBy dims the colour by amount/256
func (c Color) FadeToBlackBy(amount uint8) Color {
	if amount == 0 {
		return c
	}
	return c.Scale(255 - amount)
}

// Colorful converts the pixel into the float representation used for blending
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a blended colour back into a pixel, clamping out of
// gamut values
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// Blend linearly interpolates in RGB space, t is clamped into [0, 1]
func Blend(a, b Color, t float64) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return FromColorful(a.Colorful().BlendRgb(b.Colorful(), t))
}

// Hex formats the colour as #rrggbb
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// ParseHex reads colours in the #rrggbb form, the leading hash is optional
func ParseHex(hex string) (c Color, err error) {
	if len(hex) != 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return Black, fmt.Errorf("invalid colour %q: %v", hex, err)
	}
	return FromColorful(cf), nil
}

// Packed encodes the colour into the low 24 bits of a word
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack reverses Packed
func Unpack(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}
