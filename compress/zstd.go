package compress

// ZstdCompressor trades speed for the best compression ratio of the
// built-in codecs, suited to cold storage and archival of long gap
// sequences where decompression is infrequent.
//
// Two implementations back this type: a pure-Go path based on
// klauspost/compress (the default) and a cgo path based on gozstd. Both
// produce standard Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
