package blob

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/asmtk/vlcodec/codec"
	"github.com/asmtk/vlcodec/compress"
	"github.com/asmtk/vlcodec/endian"
	"github.com/asmtk/vlcodec/format"
	"github.com/asmtk/vlcodec/internal/hash"
)

// Decoder reads an integer sequence back out of a serialized blob.
//
// NewDecoder validates the header, verifies the payload checksum, and
// decompresses eagerly; the codewords themselves are decoded on demand by
// Decode or All.
type Decoder struct {
	codec       codec.Codec
	engine      endian.EndianEngine
	words       []uint64
	err         error
	payloadBits uint64
	count       int
	scheme      format.Scheme
	compression format.CompressionType
}

// NewDecoder parses and validates the container in data.
//
// Returns ErrTruncated, ErrInvalidMagic, ErrUnsupportedVersion, or
// ErrChecksumMismatch for malformed containers, and wrapped scheme or
// compression errors for headers naming codecs this library does not
// know.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}

	if !bytes.Equal(data[offMagic:offMagic+2], blobMagic[:]) {
		return nil, ErrInvalidMagic
	}

	if data[offVersion] != blobVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[offVersion])
	}

	engine := endian.GetLittleEndianEngine()
	if data[offFlags]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	scheme := format.Scheme(data[offScheme])
	c, err := codec.ForScheme(scheme)
	if err != nil {
		return nil, fmt.Errorf("blob header: %w", err)
	}

	compression := format.CompressionType(data[offCompression])
	comp, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("blob header: %w", err)
	}

	count := engine.Uint32(data[offCount:])
	payloadBits := uint64(engine.Uint32(data[offPayloadBits:]))
	sum := engine.Uint64(data[offChecksum:])

	payload := data[headerSize:]
	if hash.Checksum(payload) != sum {
		return nil, ErrChecksumMismatch
	}

	raw, err := comp.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	needWords := int((payloadBits + 63) / 64)
	if len(raw) < needWords*8 {
		return nil, ErrTruncated
	}

	words := make([]uint64, needWords)
	for i := range words {
		words[i] = engine.Uint64(raw[i*8:])
	}

	return &Decoder{
		codec:       c,
		engine:      engine,
		words:       words,
		payloadBits: payloadBits,
		count:       int(count),
		scheme:      scheme,
		compression: compression,
	}, nil
}

// Count returns the number of values in the sequence.
func (d *Decoder) Count() int {
	return d.count
}

// Scheme returns the codeword scheme recorded in the header.
func (d *Decoder) Scheme() format.Scheme {
	return d.scheme
}

// Compression returns the payload compression recorded in the header.
func (d *Decoder) Compression() format.CompressionType {
	return d.compression
}

// Decode decodes the whole sequence and returns it as a fresh slice.
//
// Returns a wrapped codec error if the payload does not hold exactly the
// advertised number of valid codewords within the advertised bit length.
func (d *Decoder) Decode() ([]uint64, error) {
	values := make([]uint64, 0, d.count)

	pos := uint64(0)
	for i := 0; i < d.count; i++ {
		if pos >= d.payloadBits {
			return nil, fmt.Errorf("decode value at index %d: %w", i, ErrTruncated)
		}

		v, size, err := d.codec.Decode(d.words, pos)
		if err != nil {
			return nil, fmt.Errorf("decode value at index %d: %w", i, err)
		}

		pos += size
		if pos > d.payloadBits {
			return nil, fmt.Errorf("decode value at index %d: %w", i, ErrTruncated)
		}

		values = append(values, v)
	}

	return values, nil
}

// All returns an iterator over (index, value) pairs, decoding lazily.
//
// Iteration stops early if a codeword is malformed; Err reports what
// stopped it.
func (d *Decoder) All() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		pos := uint64(0)
		for i := 0; i < d.count; i++ {
			if pos >= d.payloadBits {
				d.err = fmt.Errorf("decode value at index %d: %w", i, ErrTruncated)

				return
			}

			v, size, err := d.codec.Decode(d.words, pos)
			if err != nil {
				d.err = fmt.Errorf("decode value at index %d: %w", i, err)

				return
			}

			pos += size
			if !yield(i, v) {
				return
			}
		}
	}
}

// Err returns the error that terminated the last All iteration early, if
// any.
func (d *Decoder) Err() error {
	return d.err
}
