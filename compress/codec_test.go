package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtk/vlcodec/format"
)

// gapPayload builds a byte payload resembling a packed gap sequence:
// repetitive small deltas that every real codec should shrink.
func gapPayload(n int) []byte {
	payload := make([]byte, 0, n)
	for i := 0; len(payload) < n; i++ {
		payload = append(payload, byte(i%7), 0x00, byte(i%3), 0x01)
	}

	return payload[:n]
}

func TestCreateCodec(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload compression")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	payloads := map[string][]byte{
		"small":      gapPayload(64),
		"medium":     gapPayload(4096),
		"large":      gapPayload(256 * 1024),
		"single":     {0x42},
		"all zeroes": make([]byte, 1024),
	}

	for _, ct := range types {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(payload, restored))
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	// Repetitive gap payloads must actually shrink under the real codecs.
	payload := gapPayload(64 * 1024)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should compress repetitive data", ct)
	}
}

func TestZstd_RejectsCorruptData(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02})
	require.Error(t, err)
}
