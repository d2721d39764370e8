// Package bitfield provides fixed-width access to unsigned integer fields
// stored at absolute bit offsets in a word-packed buffer.
//
// The buffer is a flat []uint64 viewed as a contiguous bit sequence: bit 0
// of the buffer is the most significant bit of word 0, bit 64 is the most
// significant bit of word 1, and so on. Fields are stored MSB-first and may
// straddle a word boundary; at most two words are touched per access.
//
// This package is the innermost primitive of the variable-length codecs in
// the codec package. It performs no bounds checking beyond what slice
// indexing provides; callers are responsible for keeping [pos, pos+width)
// inside the buffer.
package bitfield

import "math/bits"

// WordBits is the number of bits per buffer word.
const WordBits = 64

// mask returns a value with the low width bits set. width must be 0-64.
func mask(width uint64) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// Get reads a width-bit field starting at absolute bit position pos,
// MSB-first, and returns it as an unsigned integer.
//
// Parameters:
//   - buf: Word-packed bit buffer
//   - pos: Absolute bit offset of the field's most significant bit
//   - width: Field width in bits (0-64); width 0 returns 0
//
// Returns:
//   - uint64: The field value, right-aligned
func Get(buf []uint64, pos, width uint64) uint64 {
	if width == 0 {
		return 0
	}

	wrd := pos >> 6
	off := pos & 63
	avail := uint64(64) - off

	if width <= avail {
		return (buf[wrd] >> (avail - width)) & mask(width)
	}

	// Field straddles a word boundary: the low 'avail' bits of this word
	// hold the field's high bits, the rest come from the top of the next.
	low := width - avail

	return (buf[wrd]&mask(avail))<<low | buf[wrd+1]>>(64-low)
}

// Set writes the low width bits of value into [pos, pos+width), MSB-first,
// leaving every other bit in the buffer untouched.
//
// Parameters:
//   - buf: Word-packed bit buffer
//   - pos: Absolute bit offset of the field's most significant bit
//   - width: Field width in bits (0-64); width 0 is a no-op
//   - value: Source value; bits above width are ignored
func Set(buf []uint64, pos, width, value uint64) {
	if width == 0 {
		return
	}

	value &= mask(width)

	wrd := pos >> 6
	off := pos & 63
	avail := uint64(64) - off

	if width <= avail {
		shift := avail - width
		buf[wrd] = buf[wrd]&^(mask(width)<<shift) | value<<shift

		return
	}

	low := width - avail
	buf[wrd] = buf[wrd]&^mask(avail) | value>>low
	buf[wrd+1] = buf[wrd+1]&^(mask(low)<<(64-low)) | value<<(64-low)
}

// BitLength returns the number of bits needed to represent x, i.e. the
// index of the highest set bit plus one.
//
// The codecs only ever probe nonzero operands; BitLength(0) returns 0 but
// carries no meaning at the codec layer.
func BitLength(x uint64) uint64 {
	return uint64(bits.Len64(x))
}
