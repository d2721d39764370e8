package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// One-byte block marker ahead of each LZ4 payload. CompressBlock reports
// incompressible input by returning zero bytes, so such payloads are
// stored raw instead of compressed.
const (
	lz4BlockCompressed = 0x01
	lz4BlockStored     = 0x00
)

var errLZ4BadBlockMarker = errors.New("lz4: invalid block marker")

// LZ4Compressor balances speed and ratio between S2 and Zstd.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single marked LZ4 block, using
// a pooled lz4.Compressor. Incompressible input is stored raw behind the
// marker byte.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, 1+dstSize)
	dst[0] = lz4BlockCompressed

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}

	if n == 0 {
		// Incompressible input.
		stored := make([]byte, 1+len(data))
		stored[0] = lz4BlockStored
		copy(stored[1:], data)

		return stored, nil
	}

	return dst[:1+n], nil
}

// Decompress restores a single marked LZ4 block.
//
// The block format does not record the decompressed size, so the buffer
// is sized adaptively:
//  1. Start at 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer and retry
//  3. Give up past a 128MB ceiling (corrupted data guard)
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	marker, block := data[0], data[1:]
	if marker == lz4BlockStored {
		out := make([]byte, len(block))
		copy(out, block)

		return out, nil
	}
	if marker != lz4BlockCompressed {
		return nil, errLZ4BadBlockMarker
	}

	bufSize := len(block) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2

				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
