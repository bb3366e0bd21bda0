/*
Package strip contains the pixel buffer for the LED ring together with the
raster primitives that the animations use to draw into it.

All addressing relative to a position on the ring wraps around, negative and
out of range indices are normalized modulo the strip length rather than being
treated as errors.
*/
package strip

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

const (
	// MinLen is the smallest ring every animation kind can terminate on
	MinLen = 8
	// MaxLen keeps per pixel state within the fixed size animation buffers
	MaxLen = 255
	// DefaultLen is the ring fitted to the wheel
	DefaultLen = 30
)

// Strip is a fixed length ring of pixels
type Strip struct {
	pixels []Color
}

// New allocates a blank strip of n pixels
func New(n int) (s *Strip, err errors.Error) {
	if n < MinLen || n > MaxLen {
		return nil, errors.Wrap(fmt.Errorf("strip length %d outside of [%d, %d]", n, MinLen, MaxLen)).
			With("length", n).With("stack", stack.Trace().TrimRuntime())
	}
	return &Strip{pixels: make([]Color, n)}, nil
}

// Len is the number of pixels on the ring
func (s *Strip) Len() int {
	return len(s.pixels)
}

// Normalize maps any integer onto [0, Len()) keeping it congruent modulo Len()
func (s *Strip) Normalize(i int) int {
	n := len(s.pixels)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Mirror reflects a position, 0 becomes Len()-1
func (s *Strip) Mirror(i int) int {
	return len(s.pixels) - s.Normalize(i) - 1
}

// OffsetIndex is (base + offset) mod Len(), mirrored when reverse is set
func (s *Strip) OffsetIndex(base, offset int, reverse bool) int {
	i := s.Normalize(base + offset)
	if reverse {
		return len(s.pixels) - i - 1
	}
	return i
}

// Get returns the pixel at the normalized position i
func (s *Strip) Get(i int) Color {
	return s.pixels[s.Normalize(i)]
}

// Set changes the pixel at the normalized position i
func (s *Strip) Set(i int, c Color) {
	s.pixels[s.Normalize(i)] = c
}

// Pixels exposes the buffer for display sinks, callers must not modify it
func (s *Strip) Pixels() []Color {
	return s.pixels
}

// Clear turns every pixel off
func (s *Strip) Clear() {
	s.FillAll(Black)
}

// FillAll paints the whole ring in one colour
func (s *Strip) FillAll(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Fill paints length pixels starting at start, wrapping around the end of
// the ring
func (s *Strip) Fill(start, length int, c Color) {
	for i := 0; i < length; i++ {
		s.Set(start+i, c)
	}
}

// FillGradient paints length pixels starting at start with a linear RGB
// gradient, the first pixel is a and the last is b
func (s *Strip) FillGradient(start, length int, a, b Color) {
	if length <= 0 {
		return
	}
	if length == 1 {
		s.Set(start, a)
		return
	}
	last := float64(length - 1)
	for i := 0; i < length; i++ {
		s.Set(start+i, Blend(a, b, float64(i)/last))
	}
}

// RotateLeft moves pixel i to i-count, the pixels falling off the start
// reappear at the end
func (s *Strip) RotateLeft(count int) {
	count = s.Normalize(count)
	if count == 0 {
		return
	}
	reverse(s.pixels[:count])
	reverse(s.pixels[count:])
	reverse(s.pixels)
}

// ShiftLeft moves every pixel one position towards the start and places c
// into the last pixel
func (s *Strip) ShiftLeft(c Color) {
	copy(s.pixels, s.pixels[1:])
	s.pixels[len(s.pixels)-1] = c
}

// FadeToBlackBy dims every pixel by amount/256
func (s *Strip) FadeToBlackBy(amount uint8) {
	for i, c := range s.pixels {
		s.pixels[i] = c.FadeToBlackBy(amount)
	}
}

// CountLit returns the number of pixels that are not black
func (s *Strip) CountLit() (lit int) {
	for _, c := range s.pixels {
		if !c.IsBlack() {
			lit++
		}
	}
	return lit
}

// Snapshot copies the current pixels
func (s *Strip) Snapshot() []Color {
	return append([]Color(nil), s.pixels...)
}

func reverse(a []Color) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
