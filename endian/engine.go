// Package endian provides byte order utilities for serializing blob
// headers and codeword payloads.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, so blob encoders
// can both append header fields and read them back through one value.
// Little-endian is the interchange default; big-endian is available for
// callers that need to match a foreign on-disk layout.
//
// All returned engines are immutable and stateless, safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so the engine
// interoperates with any code built on the standard interfaces.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
