package blob

import (
	"errors"

	"github.com/asmtk/vlcodec/format"
)

// Header layout, fixed 24 bytes ahead of the payload:
//
//	offset size field
//	0      2    magic (raw bytes, byte-order independent)
//	2      1    version
//	3      1    scheme
//	4      1    compression
//	5      1    flags (bit 0: payload and header words are big-endian)
//	6      2    reserved, zero
//	8      4    value count
//	12     4    payload length in bits (before compression)
//	16     8    xxHash64 of the (compressed) payload bytes
const (
	headerSize = 24

	offMagic       = 0
	offVersion     = 2
	offScheme      = 3
	offCompression = 4
	offFlags       = 5
	offCount       = 8
	offPayloadBits = 12
	offChecksum    = 16

	blobVersion = 1

	flagBigEndian = 0x01
)

var blobMagic = [2]byte{0xF1, 0xB0}

var (
	// ErrInvalidMagic is returned when the data does not start with the
	// blob magic bytes.
	ErrInvalidMagic = errors.New("invalid blob magic")

	// ErrUnsupportedVersion is returned for container versions this
	// library does not understand.
	ErrUnsupportedVersion = errors.New("unsupported blob version")

	// ErrTruncated is returned when the data is shorter than its header
	// claims.
	ErrTruncated = errors.New("truncated blob")

	// ErrChecksumMismatch is returned when the payload checksum does not
	// match the header; the payload bytes were corrupted after encoding.
	ErrChecksumMismatch = errors.New("blob checksum mismatch")

	// ErrTooManyValues is returned when a sequence exceeds the container's
	// 32-bit value count.
	ErrTooManyValues = errors.New("too many values for blob container")

	// ErrPayloadTooLarge is returned when the packed payload exceeds the
	// container's 32-bit bit-length field.
	ErrPayloadTooLarge = errors.New("payload too large for blob container")
)

// Blob is an immutable encoded integer sequence.
type Blob struct {
	data []byte
}

// Bytes returns the serialized container, header included.
//
// The returned slice is owned by the Blob; callers must not modify it.
func (b Blob) Bytes() []byte {
	return b.data
}

// Size returns the total container size in bytes.
func (b Blob) Size() int {
	return len(b.data)
}

// Scheme returns the codeword scheme recorded in the header.
func (b Blob) Scheme() format.Scheme {
	return format.Scheme(b.data[offScheme])
}

// Compression returns the payload compression recorded in the header.
func (b Blob) Compression() format.CompressionType {
	return format.CompressionType(b.data[offCompression])
}
