package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEliasGamma_BitPatterns(t *testing.T) {
	// Gamma stores bitLength(v) in unary, then all bitLength(v) bits of
	// the value, including the leading bit.
	tests := []struct {
		value uint64
		bits  string
	}{
		{1, "011"},
		{2, "001" + "10"},
		{3, "001" + "11"},
		{5, "0001" + "101"},
		{8, "00001" + "1000"},
	}

	for _, tt := range tests {
		buf := make([]uint64, 2)
		size, err := EliasGamma{}.Encode(buf, 0, tt.value)
		require.NoError(t, err, "value %d", tt.value)
		require.Equal(t, uint64(len(tt.bits)), size, "value %d", tt.value)
		require.Equal(t, tt.bits, bitString(buf, 0, size), "value %d", tt.value)

		v, dsize, err := EliasGamma{}.Decode(buf, 0)
		require.NoError(t, err)
		require.Equal(t, tt.value, v)
		require.Equal(t, size, dsize)
	}
}

func TestEliasGamma_ZeroRejected(t *testing.T) {
	buf := make([]uint64, 2)

	_, err := EliasGamma{}.Encode(buf, 0, 0)
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestEliasGamma_RoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 7, 8, 255, 256, 1 << 20, 1 << 40, math.MaxUint64}

	for _, v := range values {
		buf := make([]uint64, 4)
		size, err := EliasGamma{}.Encode(buf, 37, v)
		require.NoError(t, err, "value %d", v)

		got, dsize, err := EliasGamma{}.Decode(buf, 37)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got)
		require.Equal(t, size, dsize)
	}
}

func TestEliasDelta_One(t *testing.T) {
	// v=1: bit length 1 gamma-encodes as 011, no residual bits follow.
	buf := make([]uint64, 1)

	size, err := EliasDelta{}.Encode(buf, 0, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(3), size)
	require.Equal(t, "011", bitString(buf, 0, size))

	v, dsize, err := EliasDelta{}.Decode(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.Equal(t, uint64(3), dsize)
}

func TestEliasDelta_BitPatterns(t *testing.T) {
	tests := []struct {
		value uint64
		bits  string
	}{
		// v=2: bit length 2, gamma(2)=00110, residual "0".
		{2, "00110" + "0"},
		{3, "00110" + "1"},
		// v=5: bit length 3, gamma(3)=00111, residual "01".
		{5, "00111" + "01"},
	}

	for _, tt := range tests {
		buf := make([]uint64, 2)
		size, err := EliasDelta{}.Encode(buf, 0, tt.value)
		require.NoError(t, err, "value %d", tt.value)
		require.Equal(t, uint64(len(tt.bits)), size)
		require.Equal(t, tt.bits, bitString(buf, 0, size), "value %d", tt.value)
	}
}

func TestEliasDelta_ZeroRejected(t *testing.T) {
	buf := make([]uint64, 2)

	_, err := EliasDelta{}.Encode(buf, 0, 0)
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestEliasDelta_RoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 7, 8, 16, 255, 256, 65535, 1 << 33, math.MaxUint64}

	for _, v := range values {
		buf := make([]uint64, 4)
		size, err := EliasDelta{}.Encode(buf, 51, v)
		require.NoError(t, err, "value %d", v)

		got, dsize, err := EliasDelta{}.Decode(buf, 51)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got)
		require.Equal(t, size, dsize)
	}
}

func TestEliasDelta_ShorterThanGammaForLargeValues(t *testing.T) {
	buf1 := make([]uint64, 4)
	buf2 := make([]uint64, 4)

	gammaSize, err := EliasGamma{}.Encode(buf1, 0, 1<<40)
	require.NoError(t, err)

	deltaSize, err := EliasDelta{}.Encode(buf2, 0, 1<<40)
	require.NoError(t, err)

	require.Less(t, deltaSize, gammaSize)
}
