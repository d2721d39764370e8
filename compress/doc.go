// Package compress provides pluggable byte-level compression for encoded
// integer-sequence payloads.
//
// Bit-packed codewords are already dense, but runs of similar gaps still
// leave exploitable redundancy at the byte level; blob containers can
// therefore layer a general-purpose compressor over the packed payload.
// Four codecs are provided: None (pass-through), Zstd (best ratio), S2
// (fastest), and LZ4 (balanced).
//
// All codecs are stateless values, safe for concurrent use; internal
// encoder/decoder instances are pooled where the underlying library
// benefits from reuse.
package compress
