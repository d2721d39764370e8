// Package pool provides pooled byte buffers for blob assembly.
//
// Blob encoders serialize a header plus a packed codeword payload in one
// pass; pooling the scratch buffer keeps repeated encodes allocation-free
// once the pool is warm.
package pool

import "sync"

const (
	// BlobBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for a few thousand short codewords plus header.
	BlobBufferDefaultSize = 1024 * 16 // 16KiB

	// BlobBufferMaxThreshold caps what is returned to the pool; buffers
	// grown past this are dropped so one huge sequence cannot pin memory.
	BlobBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a minimal append-based buffer handed out by the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}
	grown := make([]byte, len(bb.B), len(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

var blobBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlobBufferDefaultSize)
	},
}

// GetBlobBuffer obtains a reset ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb := blobBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns a ByteBuffer to the pool. Oversized buffers are
// dropped instead of pooled.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BlobBufferMaxThreshold {
		return
	}
	blobBufferPool.Put(bb)
}
