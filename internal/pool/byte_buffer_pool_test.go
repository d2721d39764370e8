package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 8)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2})

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte{1, 2}, bb.Bytes())
}

func TestGetPutBlobBuffer(t *testing.T) {
	bb := GetBlobBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("payload"))
	PutBlobBuffer(bb)

	// A reused buffer always comes back reset.
	bb2 := GetBlobBuffer()
	require.Equal(t, 0, bb2.Len())
	PutBlobBuffer(bb2)
}

func TestPutBlobBuffer_DropsOversized(t *testing.T) {
	bb := NewByteBuffer(BlobBufferMaxThreshold * 2)
	// Must not panic or pool the oversized buffer.
	PutBlobBuffer(bb)
	PutBlobBuffer(nil)
}
