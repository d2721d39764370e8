package vlcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtk/vlcodec/blob"
	"github.com/asmtk/vlcodec/format"
)

func TestEncodeDecodeSequence_Defaults(t *testing.T) {
	values := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 1 << 30}

	b, err := EncodeSequence(values)
	require.NoError(t, err)
	require.Equal(t, format.SchemeFibonacci, b.Scheme())
	require.Equal(t, format.CompressionNone, b.Compression())

	decoded, err := DecodeSequence(b.Bytes())
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeDecodeSequence_WithOptions(t *testing.T) {
	values := []uint64{1, 2, 3, 1000, 1000000}

	b, err := EncodeSequence(values,
		blob.WithScheme(format.SchemeEliasDelta),
		blob.WithCompression(format.CompressionS2),
	)
	require.NoError(t, err)
	require.Equal(t, format.SchemeEliasDelta, b.Scheme())
	require.Equal(t, format.CompressionS2, b.Compression())

	decoded, err := DecodeSequence(b.Bytes())
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeSequence_InvalidOption(t *testing.T) {
	_, err := EncodeSequence([]uint64{1}, blob.WithScheme(format.Scheme(0x7F)))
	require.Error(t, err)
}

func TestDecodeSequence_Garbage(t *testing.T) {
	_, err := DecodeSequence([]byte("not a blob at all"))
	require.Error(t, err)
}
