package node

import "math/bits"

// BitSet256 is a fixed-size occupancy mask over the 256 possible child
// bytes of a node. Node48 and Node256 keep one alongside their child tables
// so that ordered iteration and min/max scans run on find-first-set over
// four words instead of probing all 256 slots.
type BitSet256 [4]uint64

// Set sets the bit.
func (b *BitSet256) Set(bit uint8) {
	b[bit>>6] |= 1 << (bit & 63)
}

// Clear clears the bit.
func (b *BitSet256) Clear(bit uint8) {
	b[bit>>6] &^= 1 << (bit & 63)
}

// Test reports whether the bit is set.
func (b *BitSet256) Test(bit uint8) bool {
	return b[bit>>6]&(1<<(bit&63)) != 0
}

// FirstSet returns the lowest set bit.
func (b *BitSet256) FirstSet() (first uint8, ok bool) {
	if x := bits.TrailingZeros64(b[0]); x != 64 {
		return uint8(x), true
	} else if x := bits.TrailingZeros64(b[1]); x != 64 {
		return uint8(x + 64), true
	} else if x := bits.TrailingZeros64(b[2]); x != 64 {
		return uint8(x + 128), true
	} else if x := bits.TrailingZeros64(b[3]); x != 64 {
		return uint8(x + 192), true
	}
	return
}

// LastSet returns the highest set bit.
func (b *BitSet256) LastSet() (last uint8, ok bool) {
	for w := 3; w >= 0; w-- {
		if word := b[w]; word != 0 {
			return uint8(w<<6 + bits.Len64(word) - 1), true
		}
	}
	return
}

// NextSet returns the next set bit at or above start. The start cursor is a
// uint so that callers can pass 256 to mean "past the end".
func (b *BitSet256) NextSet(start uint) (next uint8, ok bool) {
	w := int(start >> 6)
	if w >= 4 {
		return 0, false
	}

	// First, maybe partial, word.
	if first := b[w] >> (start & 63); first != 0 {
		return uint8(start + uint(bits.TrailingZeros64(first))), true
	}

	for w++; w < 4; w++ {
		if word := b[w]; word != 0 {
			return uint8(w<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Count returns the number of set bits.
func (b *BitSet256) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}
