package codec

import "github.com/asmtk/vlcodec/bitfield"

// Generalized unary code parameters. With start=3, step=2 and no stop
// bucket, the m-th codeword is unary(m) followed by w = start + m*step
// binary bits:
//
//	m  w  template      # vals      range
//	0  3  1xxx               8      0-7
//	1  5  01xxxxx           32      8-39
//	2  7  001xxxxxxx       128     40-167
//	3  9  000xxxxxxxxx     512    168-679
const (
	genUnaryStart = 3
	genUnaryStep  = 2
)

// GeneralizedUnary implements the unbounded generalized unary code with
// start=3 and step=2: a unary-encoded bucket index followed by a
// fixed-width binary residual, where bucket widths grow by step bits per
// bucket. The code is prefix-free and covers the full uint64 domain.
//
// A finite stop bucket would shave the terminator bit off the last bucket
// for bounded domains; this implementation does not apply that
// optimization.
//
// Bucket widths grow 3, 5, ..., 63; a value beyond the combined capacity
// of those buckets would need a 65-bit residual, so the representable
// domain tops out at MaxGeneralizedUnary rather than MaxUint64.
type GeneralizedUnary struct{}

// MaxGeneralizedUnary is the largest value the generalized unary code can
// represent: the combined capacity of all buckets with residual widths up
// to 63 bits, minus one.
const MaxGeneralizedUnary uint64 = (1<<genUnaryStart)*((1<<(2*(genUnaryMaxBucket+1)))-1)/3 - 1

// genUnaryMaxBucket is the index of the last bucket whose residual still
// fits in a 64-bit field: start + m*step <= 64.
const genUnaryMaxBucket = (64 - genUnaryStart) / genUnaryStep

var _ Codec = GeneralizedUnary{}

// Encode writes v as a unary bucket prefix and a fixed-width residual.
//
// The bucket search walks buckets linearly, subtracting each bucket's
// 2^w capacity from v until v fits; m grows only logarithmically in the
// value, so the walk stays short. Returns ErrValueOutOfRange if v exceeds
// MaxGeneralizedUnary, ErrOutOfBounds if the codeword does not fit in buf.
func (GeneralizedUnary) Encode(buf []uint64, pos uint64, v uint64) (uint64, error) {
	m := uint64(0)
	w := uint64(genUnaryStart)
	n := uint64(1) << w

	// Find the bucket, stripping the capacity of every smaller bucket so
	// that v becomes the residual.
	for n <= v {
		v -= n
		w += genUnaryStep
		if w > 64 {
			return 0, ErrValueOutOfRange
		}
		n = uint64(1) << w
		m++
	}

	size := m + 1 + w
	if pos+size > bitLen(buf) {
		return 0, ErrOutOfBounds
	}

	prefixSize, err := Unary{}.Encode(buf, pos, m)
	if err != nil {
		return 0, err
	}

	bitfield.Set(buf, pos+prefixSize, w, v)

	return size, nil
}

// Decode reads the unary bucket prefix, then the residual, and adds back
// the capacities of all smaller buckets.
func (GeneralizedUnary) Decode(buf []uint64, pos uint64) (uint64, uint64, error) {
	m, prefixSize, err := Unary{}.Decode(buf, pos)
	if err != nil {
		return 0, 0, err
	}

	w := uint64(genUnaryStart) + m*genUnaryStep
	if w > 64 {
		// The prefix names a bucket whose residual cannot exist; the
		// buffer does not hold a valid codeword at pos.
		return 0, 0, ErrValueOutOfRange
	}

	size := m + 1 + w
	if pos+size > bitLen(buf) {
		return 0, 0, ErrOutOfBounds
	}

	v := bitfield.Get(buf, pos+prefixSize, w)

	// Restore the implicitly stored bucket capacities, widths shrinking by
	// step from w back down to the first bucket.
	for ; m > 0; m-- {
		w -= genUnaryStep
		v += uint64(1) << w
	}

	return v, size, nil
}
