package codec

import (
	"math"

	"github.com/asmtk/vlcodec/bitfield"
)

// fibonacciCount is the number of precomputed Fibonacci numbers. The
// 92nd entry (12200160415121876738) is the last one that fits in a
// uint64; their partial sums cover the full uint64 domain with a
// two-word, at most 93-bit codeword.
const fibonacciCount = 92

// fibonacciValues holds 1, 2, 3, 5, 8, ... so that every positive uint64
// has a unique Zeckendorf decomposition over distinct, non-consecutive
// entries. Initialized once; read-only afterwards.
var fibonacciValues = makeFibonacciTable()

func makeFibonacciTable() [fibonacciCount]uint64 {
	var table [fibonacciCount]uint64
	table[0] = 1
	table[1] = 2
	for i := 2; i < fibonacciCount; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table
}

// Fibonacci implements the Fibonacci code over the Zeckendorf
// decomposition: a codeword is a bitmask over table positions (1 = term
// used) followed by a terminating pair of consecutive one bits. The
// terminator is unambiguous because a Zeckendorf decomposition never uses
// two adjacent Fibonacci numbers.
//
// Zero has no Zeckendorf decomposition, so values are stored shifted up
// by one; the domain is therefore 0 through MaxUint64-1. Values below
// 17167680177564 fit in a single 64-bit field; larger values take the
// two-field form of up to 93 bits.
//
// Decoding scans bit by bit for the terminator pair, so it is markedly
// slower per bit than the word-skipping unary family; the trade is the
// best average compactness of the five schemes for typical gap data.
type Fibonacci struct{}

var _ Codec = Fibonacci{}

// Encode writes the Zeckendorf bitmask of v+1 and the doubled-one
// terminator at pos. Returns ErrValueOutOfRange for v == MaxUint64 (the
// domain shift would wrap) and ErrOutOfBounds if the codeword does not
// fit in buf.
func (Fibonacci) Encode(buf []uint64, pos uint64, v uint64) (uint64, error) {
	if v == math.MaxUint64 {
		return 0, ErrValueOutOfRange
	}

	// Zero cannot be stored as a Fibonacci number; shift the domain.
	v++

	// Assemble the codeword into two left-aligned words: table position i
	// maps to bit 63-i of out1 for i < 64, bit 127-i of out2 above that.
	var out1, out2 uint64
	fibmax := uint64(0)

	for fib := fibonacciCount - 1; fib >= 0; fib-- {
		if v < fibonacciValues[fib] {
			continue
		}

		if fib >= 64 {
			out2 |= uint64(1) << (127 - uint64(fib))
		} else {
			out1 |= uint64(1) << (63 - uint64(fib))
		}

		v -= fibonacciValues[fib]

		if fibmax == 0 {
			// Highest term: place the terminator bit right above it,
			// forming the adjacent pair no decomposition can produce.
			fibmax = uint64(fib) + 1
			if fibmax >= 64 {
				out2 |= uint64(1) << (127 - fibmax)
			} else {
				out1 |= uint64(1) << (63 - fibmax)
			}
		}
	}

	// Codeword spans table positions 0 through fibmax inclusive.
	fibmax++

	if pos+fibmax > bitLen(buf) {
		return 0, ErrOutOfBounds
	}

	if fibmax > 64 {
		bitfield.Set(buf, pos, 64, out1)
		bitfield.Set(buf, pos+64, fibmax-64, out2>>(128-fibmax))
	} else {
		bitfield.Set(buf, pos, fibmax, out1>>(64-fibmax))
	}

	return fibmax, nil
}

// Decode scans bit by bit from pos, accumulating the table entry for each
// one bit, and stops at the first pair of adjacent one bits. Returns
// ErrOutOfBounds if the buffer ends before the terminator,
// ErrValueOutOfRange if the scan runs past the table (not a valid
// codeword).
func (Fibonacci) Decode(buf []uint64, pos uint64) (uint64, uint64, error) {
	total := bitLen(buf)
	if pos+2 > total {
		return 0, 0, ErrOutOfBounds
	}

	oldbit := bitfield.Get(buf, pos, 1)
	newbit := bitfield.Get(buf, pos+1, 1)
	next := pos + 2

	val := uint64(0)
	fib := 0

	for oldbit == 0 || newbit == 0 {
		if oldbit == 1 {
			val += fibonacciValues[fib]
		}

		fib++
		if fib >= fibonacciCount {
			return 0, 0, ErrValueOutOfRange
		}

		if next >= total {
			return 0, 0, ErrOutOfBounds
		}

		oldbit = newbit
		newbit = bitfield.Get(buf, next, 1)
		next++
	}

	// The first of the two terminator bits is the highest term used.
	val += fibonacciValues[fib]

	return val - 1, uint64(fib) + 2, nil
}
