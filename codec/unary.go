package codec

import (
	"math"

	"github.com/asmtk/vlcodec/bitfield"
)

// Unary implements the plain unary code: a value v is stored as v zero
// bits followed by a single terminating one bit, so the codeword occupies
// v+1 bits.
//
//	0 -> 1
//	1 -> 01
//	2 -> 001
//	5 -> 000001
//
// Zero (not one) is the run symbol so that the decoder can skip whole
// zero words and finish with a single bit-length probe on the first
// nonzero word, costing one word read per 64 bits of run instead of one
// bit read per run bit.
//
// Unary is the prefix primitive underneath GeneralizedUnary and
// EliasGamma. Its domain is all uint64 values, but the codeword grows
// linearly with the value, so it is only sensible for small counts.
type Unary struct{}

var _ Codec = Unary{}

// Encode writes v as v zero bits and a terminating one bit at pos.
//
// Returns ErrValueOutOfRange for v == MaxUint64 (the codeword size v+1
// wraps) and ErrOutOfBounds if the v+1 codeword bits do not fit in buf.
func (Unary) Encode(buf []uint64, pos uint64, v uint64) (uint64, error) {
	if v == math.MaxUint64 {
		return 0, ErrValueOutOfRange
	}

	size := v + 1
	if pos+size > bitLen(buf) || pos+size < pos {
		return 0, ErrOutOfBounds
	}

	for v >= 64 {
		bitfield.Set(buf, pos, 64, 0)
		pos += 64
		v -= 64
	}

	// Remaining run plus terminator in one field: only the field's lowest
	// bit is set.
	bitfield.Set(buf, pos, v+1, 1)

	return size, nil
}

// Decode reads a unary codeword at pos, returning the zero-run length and
// the codeword size (run length + 1).
//
// Whole zero words are skipped with 64-bit reads; the run remainder inside
// the first nonzero word is recovered from the bit-length probe. Returns
// ErrOutOfBounds if the buffer ends before a terminator is found.
func (Unary) Decode(buf []uint64, pos uint64) (uint64, uint64, error) {
	total := bitLen(buf)
	zeros := uint64(0)

	for {
		if pos >= total {
			return 0, 0, ErrOutOfBounds
		}

		width := uint64(64)
		if total-pos < width {
			width = total - pos
		}

		field := bitfield.Get(buf, pos, width)
		if field == 0 {
			zeros += width
			pos += width

			continue
		}

		// Leading zeros inside this field complete the run.
		zeros += width - bitfield.BitLength(field)

		return zeros, zeros + 1, nil
	}
}
