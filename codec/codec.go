package codec

import (
	"fmt"

	"github.com/asmtk/vlcodec/format"
)

// Codec is the common surface of the five variable-length integer codes.
//
// Encode writes one codeword for v starting at absolute bit position pos
// and returns its size in bits. Decode reads the codeword at pos and
// returns the value along with the identical size, so that a caller can
// advance a running position symmetrically on both paths.
//
// Implementations are stateless value types; a Codec may be shared freely
// across goroutines.
type Codec interface {
	// Encode writes v at bit position pos and returns the codeword size in
	// bits (always >= 1).
	Encode(buf []uint64, pos uint64, v uint64) (size uint64, err error)

	// Decode reads the codeword at bit position pos and returns the value
	// and the codeword size in bits.
	Decode(buf []uint64, pos uint64) (v uint64, size uint64, err error)
}

// ForScheme returns the Codec implementing the given scheme.
//
// Returns:
//   - Codec: Stateless codec instance for the scheme
//   - error: Unknown scheme error
func ForScheme(scheme format.Scheme) (Codec, error) {
	switch scheme {
	case format.SchemeUnary:
		return Unary{}, nil
	case format.SchemeGeneralizedUnary:
		return GeneralizedUnary{}, nil
	case format.SchemeEliasGamma:
		return EliasGamma{}, nil
	case format.SchemeEliasDelta:
		return EliasDelta{}, nil
	case format.SchemeFibonacci:
		return Fibonacci{}, nil
	default:
		return nil, fmt.Errorf("unsupported scheme: %s", scheme)
	}
}

// bitLen returns the total number of addressable bits in buf.
func bitLen(buf []uint64) uint64 {
	return uint64(len(buf)) * 64
}
