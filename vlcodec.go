// Package vlcodec provides bit-level variable-length integer codes for
// compact storage of non-negative integer sequences: offsets, counts, and
// gaps inside assembly index structures.
//
// Five schemes are implemented in the codec package, all packing
// codewords into a contiguous, bit-addressable []uint64 buffer with no
// wasted bits: unary, generalized unary, Elias gamma, Elias delta, and
// Fibonacci (Zeckendorf). The blob package wraps whole sequences in a
// self-describing container with optional Zstd/S2/LZ4 compression and an
// xxHash64 payload checksum.
//
// # Direct codec usage
//
//	buf := make([]uint64, 16)
//	pos := uint64(0)
//	for _, gap := range gaps {
//	    size, err := codec.Fibonacci{}.Encode(buf, pos, gap)
//	    if err != nil {
//	        return err
//	    }
//	    pos += size
//	}
//
// # Sequence containers
//
//	b, err := vlcodec.EncodeSequence(gaps,
//	    blob.WithScheme(format.SchemeFibonacci),
//	    blob.WithCompression(format.CompressionS2),
//	)
//	...
//	gaps, err = vlcodec.DecodeSequence(b.Bytes())
//
// This package is a thin convenience layer; use the codec and blob
// packages directly for fine-grained control.
package vlcodec

import (
	"github.com/asmtk/vlcodec/blob"
)

// EncodeSequence packs values into a self-describing blob using the given
// encoder options (Fibonacci scheme, no compression, and little-endian
// byte order by default).
//
// Parameters:
//   - values: The sequence to encode; may be empty
//   - opts: Encoder options (scheme, compression, byte order)
//
// Returns:
//   - blob.Blob: Immutable serialized container
//   - error: Invalid option, domain, or container limit error
func EncodeSequence(values []uint64, opts ...blob.Option) (blob.Blob, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return blob.Blob{}, err
	}

	return encoder.Encode(values)
}

// DecodeSequence parses a blob produced by EncodeSequence (or a
// blob.Encoder) and returns the decoded values.
//
// Parameters:
//   - data: Serialized container bytes, header included
//
// Returns:
//   - []uint64: The decoded sequence
//   - error: Malformed container or codeword error
func DecodeSequence(data []byte) ([]uint64, error) {
	decoder, err := blob.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
