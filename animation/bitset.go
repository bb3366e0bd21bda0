package animation

import (
	"math/bits"

	"github.com/xZise/Riesenrad/strip"
)

// bitset is a fixed capacity set of pixel positions
type bitset [(strip.MaxLen + 63) / 64]uint64

// set marks pos, returning whether it was already marked
func (b *bitset) set(pos int) (wasSet bool) {
	cell, mask := pos/64, uint64(1)<<(uint(pos)%64)
	wasSet = b[cell]&mask != 0
	b[cell] |= mask
	return wasSet
}

// reset clears pos, returning whether it was marked before
func (b *bitset) reset(pos int) (wasSet bool) {
	cell, mask := pos/64, uint64(1)<<(uint(pos)%64)
	wasSet = b[cell]&mask != 0
	b[cell] &^= mask
	return wasSet
}

func (b *bitset) test(pos int) bool {
	return b[pos/64]&(uint64(1)<<(uint(pos)%64)) != 0
}

func (b *bitset) count() (count int) {
	for _, cell := range b {
		count += bits.OnesCount64(cell)
	}
	return count
}
