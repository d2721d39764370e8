package codec

import "github.com/asmtk/vlcodec/bitfield"

// EliasGamma implements a gamma-style code: the bit length b of the
// value is unary-encoded, then the value is written in exactly b bits.
// Domain: v >= 1.
//
// Note that this variant stores the value's leading bit explicitly, one
// bit wider than the textbook gamma code (which stores only the b-1 bits
// below the leading bit and reinstates it on decode). Decode accordingly
// returns the b-bit field as-is with no bit reinstated. Consumers
// expecting textbook gamma codewords must not mix the two.
type EliasGamma struct{}

var _ Codec = EliasGamma{}

// Encode writes v as unary(bitLength(v)) followed by v in bitLength(v)
// bits. Returns ErrValueOutOfRange for v == 0 (zero has no bit length)
// and ErrOutOfBounds if the codeword does not fit in buf.
func (EliasGamma) Encode(buf []uint64, pos uint64, v uint64) (uint64, error) {
	if v == 0 {
		return 0, ErrValueOutOfRange
	}

	b := bitfield.BitLength(v)
	size := (b + 1) + b
	if pos+size > bitLen(buf) {
		return 0, ErrOutOfBounds
	}

	prefixSize, err := Unary{}.Encode(buf, pos, b)
	if err != nil {
		return 0, err
	}

	bitfield.Set(buf, pos+prefixSize, b, v)

	return size, nil
}

// Decode reads the unary bit-length prefix and returns the following
// b-bit field directly.
func (EliasGamma) Decode(buf []uint64, pos uint64) (uint64, uint64, error) {
	b, prefixSize, err := Unary{}.Decode(buf, pos)
	if err != nil {
		return 0, 0, err
	}

	if b > 64 {
		// No uint64 value has a bit length above 64; the buffer does not
		// hold a valid codeword at pos.
		return 0, 0, ErrValueOutOfRange
	}

	size := prefixSize + b
	if pos+size > bitLen(buf) {
		return 0, 0, ErrOutOfBounds
	}

	return bitfield.Get(buf, pos+prefixSize, b), size, nil
}
