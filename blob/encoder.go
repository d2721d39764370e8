package blob

import (
	"errors"
	"fmt"
	"math"

	"github.com/asmtk/vlcodec/codec"
	"github.com/asmtk/vlcodec/compress"
	"github.com/asmtk/vlcodec/endian"
	"github.com/asmtk/vlcodec/format"
	"github.com/asmtk/vlcodec/internal/hash"
	"github.com/asmtk/vlcodec/internal/options"
	"github.com/asmtk/vlcodec/internal/pool"
)

// initialWordsPerValue sizes the packing buffer optimistically: most gap
// sequences average well under one word per codeword.
const initialWordsPerValue = 1

// Encoder packs integer sequences into self-describing blobs.
//
// An Encoder is configured once via functional options and may then be
// reused for any number of Encode calls; it keeps no per-sequence state.
type Encoder struct {
	codec       codec.Codec
	comp        compress.Codec
	engine      endian.EndianEngine
	scheme      format.Scheme
	compression format.CompressionType
	bigEndian   bool
}

// NewEncoder creates an Encoder with the given options.
//
// Defaults: Fibonacci scheme, no compression, little-endian.
//
// Returns:
//   - *Encoder: Configured encoder, reusable across sequences
//   - error: Invalid option error (unknown scheme or compression)
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		scheme:      format.SchemeFibonacci,
		codec:       codec.Fibonacci{},
		compression: format.CompressionNone,
		comp:        compress.NewNoOpCompressor(),
		engine:      endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Scheme returns the configured codeword scheme.
func (e *Encoder) Scheme() format.Scheme {
	return e.scheme
}

// Compression returns the configured payload compression.
func (e *Encoder) Compression() format.CompressionType {
	return e.compression
}

// Encode packs values back-to-back with the configured scheme and
// returns the finished container.
//
// Values must all lie inside the scheme's domain; the first offender
// aborts the encode with a wrapped codec.ErrValueOutOfRange carrying the
// value and its index.
//
// Parameters:
//   - values: The sequence to encode; may be empty
//
// Returns:
//   - Blob: Immutable serialized container
//   - error: Domain error, or a container limit error for oversized sequences
func (e *Encoder) Encode(values []uint64) (Blob, error) {
	if uint64(len(values)) > math.MaxUint32 {
		return Blob{}, ErrTooManyValues
	}

	words, bits, err := e.pack(values)
	if err != nil {
		return Blob{}, err
	}

	if bits > math.MaxUint32 {
		return Blob{}, ErrPayloadTooLarge
	}

	// Serialize the used words in the configured byte order.
	usedWords := int((bits + 63) / 64)
	payloadBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(payloadBuf)

	payloadBuf.Grow(usedWords * 8)
	for i := 0; i < usedWords; i++ {
		payloadBuf.B = e.engine.AppendUint64(payloadBuf.B, words[i])
	}

	compressed, err := e.comp.Compress(payloadBuf.Bytes())
	if err != nil {
		return Blob{}, fmt.Errorf("compress payload: %w", err)
	}

	flags := byte(0)
	if e.bigEndian {
		flags |= flagBigEndian
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out,
		blobMagic[0], blobMagic[1],
		blobVersion,
		byte(e.scheme),
		byte(e.compression),
		flags,
		0, 0,
	)
	out = e.engine.AppendUint32(out, uint32(len(values)))
	out = e.engine.AppendUint32(out, uint32(bits))
	out = e.engine.AppendUint64(out, hash.Checksum(compressed))
	out = append(out, compressed...)

	return Blob{data: out}, nil
}

// pack bit-packs the values into a word buffer, growing it as codewords
// run past the end, and returns the buffer plus the number of bits used.
func (e *Encoder) pack(values []uint64) ([]uint64, uint64, error) {
	capWords := len(values) * initialWordsPerValue
	if capWords < 4 {
		capWords = 4
	}
	words := make([]uint64, capWords)

	pos := uint64(0)
	for i, v := range values {
		for {
			size, err := e.codec.Encode(words, pos, v)
			if err == nil {
				pos += size

				break
			}

			if errors.Is(err, codec.ErrOutOfBounds) {
				words = append(words, make([]uint64, len(words))...)

				continue
			}

			return nil, 0, fmt.Errorf("encode value %d at index %d: %w", v, i, err)
		}
	}

	return words, pos, nil
}
