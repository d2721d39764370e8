// Package codec implements five bit-level variable-length integer codes
// over a caller-owned, word-packed bit buffer: unary, generalized unary,
// Elias gamma, Elias delta, and Fibonacci (Zeckendorf).
//
// All five schemes share the same surface: Encode writes one codeword for
// an unsigned value at an absolute bit position and returns its size in
// bits; Decode reads the codeword back and returns the value together with
// the same size. Codewords pack back-to-back with no wasted bits and may
// straddle 64-bit word boundaries freely.
//
// # Choosing a scheme
//
//   - Unary: trivial, grows linearly with the value; only sensible for
//     very small counts.
//   - GeneralizedUnary: exponential buckets (start=3, step=2); good for
//     small-to-medium gap distributions.
//   - EliasGamma / EliasDelta: classic universal codes; delta wins once
//     values regularly exceed a few dozen.
//   - Fibonacci: best average compactness of the five for typical gap
//     data, at the cost of a bit-by-bit decode.
//
// # Buffer ownership and concurrency
//
// The codecs never allocate or resize the buffer; the caller provides a
// []uint64 large enough for the codewords it intends to store. Every call
// touches only its own [pos, pos+size) window, so calls on disjoint
// windows of the same buffer are safe to run concurrently. The only
// package-level state is the immutable Fibonacci number table.
//
// # Errors
//
// Encode and Decode validate the value domain of the scheme and the buffer
// bounds of the computed codeword, returning ErrValueOutOfRange and
// ErrOutOfBounds respectively. A failed call writes nothing useful and is
// not recoverable mid-codeword; the caller decides whether to abort or
// skip the record.
package codec
