package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03}, Checksum([]byte{0x00, 0x01, 0x02, 0x03})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}
}

func TestChecksum_Distinguishes(t *testing.T) {
	a := Checksum([]byte{0x01, 0x02, 0x03})
	b := Checksum([]byte{0x01, 0x02, 0x04})
	assert.NotEqual(t, a, b)
}
