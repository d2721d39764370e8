package codec

import "github.com/asmtk/vlcodec/bitfield"

// EliasDelta implements the Elias delta code layered on EliasGamma: the
// bit length b of the value is gamma-encoded, then the b-1 bits below the
// value's leading bit follow. The leading bit itself is implicit and is
// reinstated by Decode. Domain: v >= 1.
//
// Delta overtakes gamma once values regularly need more than a handful of
// bits: the length prefix grows with log(log(v)) instead of log(v).
type EliasDelta struct{}

var _ Codec = EliasDelta{}

// Encode gamma-encodes bitLength(v), then appends the low bitLength(v)-1
// bits of v. Returns ErrValueOutOfRange for v == 0 and ErrOutOfBounds if
// the codeword does not fit in buf.
func (EliasDelta) Encode(buf []uint64, pos uint64, v uint64) (uint64, error) {
	if v == 0 {
		return 0, ErrValueOutOfRange
	}

	b := bitfield.BitLength(v)

	// Gamma codeword for b spans 2*bitLength(b)+1 bits; the residual adds
	// b-1 more. Validate the whole span before writing anything.
	size := 2*bitfield.BitLength(b) + 1 + (b - 1)
	if pos+size > bitLen(buf) {
		return 0, ErrOutOfBounds
	}

	prefixSize, err := EliasGamma{}.Encode(buf, pos, b)
	if err != nil {
		return 0, err
	}

	bitfield.Set(buf, pos+prefixSize, b-1, v)

	return size, nil
}

// Decode reads the gamma-encoded bit length, then the residual bits, and
// reinstates the implicit leading bit.
func (EliasDelta) Decode(buf []uint64, pos uint64) (uint64, uint64, error) {
	bl, prefixSize, err := EliasGamma{}.Decode(buf, pos)
	if err != nil {
		return 0, 0, err
	}

	if bl == 0 || bl > 64 {
		// Valid delta codewords always carry a bit length of 1-64.
		return 0, 0, ErrValueOutOfRange
	}

	b := bl - 1
	size := prefixSize + b
	if pos+size > bitLen(buf) {
		return 0, 0, ErrOutOfBounds
	}

	v := uint64(1)<<b | bitfield.Get(buf, pos+prefixSize, b)

	return v, size, nil
}
