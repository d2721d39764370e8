package blob

import (
	"github.com/asmtk/vlcodec/codec"
	"github.com/asmtk/vlcodec/compress"
	"github.com/asmtk/vlcodec/endian"
	"github.com/asmtk/vlcodec/format"
	"github.com/asmtk/vlcodec/internal/options"
)

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithScheme selects the codeword scheme for the sequence.
//
// The default is Fibonacci, the most compact of the five for typical gap
// distributions. Returns an error at NewEncoder time for unknown schemes.
func WithScheme(scheme format.Scheme) Option {
	return options.New(func(e *Encoder) error {
		c, err := codec.ForScheme(scheme)
		if err != nil {
			return err
		}
		e.scheme = scheme
		e.codec = c

		return nil
	})
}

// WithCompression selects the payload compression. The default is None.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		c, err := compress.CreateCodec(compression, "payload")
		if err != nil {
			return err
		}
		e.compression = compression
		e.comp = c

		return nil
	})
}

// WithLittleEndian serializes header fields and payload words
// little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = false
		e.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian serializes header fields and payload words big-endian,
// for interoperability with big-endian on-disk layouts.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.bigEndian = true
		e.engine = endian.GetBigEndianEngine()
	})
}
