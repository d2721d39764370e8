// Package hash provides the payload checksum used by blob containers.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload.
//
// xxHash64 is not cryptographic; it guards against truncation and bit rot,
// not tampering.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
