package sol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU29KnownForms(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x81, 0x00}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x81, 0x80, 0x00}},
		{0x1fffff, []byte{0xff, 0xff, 0x7f}},
		{0x200000, []byte{0x80, 0xc0, 0x80, 0x00}},
		{0x1fffffff, []byte{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got, err := u29encode(nil, tt.n)
		require.NoError(t, err, "encoding %#x", tt.n)
		assert.Equal(t, tt.want, got, "encoding %#x", tt.n)

		n, sz, err := u29decode(got)
		require.NoError(t, err, "decoding %#x", tt.n)
		assert.Equal(t, tt.n, n)
		assert.Equal(t, len(tt.want), sz)
	}
}

func TestU29RoundTrip(t *testing.T) {
	// Sweep each length-class boundary plus a spread of interior values.
	values := []int{0, 1, 0x7e, 0x7f, 0x80, 0x81, 0x3ffe, 0x3fff, 0x4000,
		0x4001, 0x1ffffe, 0x1fffff, 0x200000, 0x200001, 0x0fffffff,
		0x10000000, 0x1ffffffe, 0x1fffffff}
	for v := 3; v < u29Max; v = v*7 + 11 {
		values = append(values, v)
	}
	for _, v := range values {
		b, err := u29encode(nil, v)
		require.NoError(t, err, "value %#x", v)
		n, sz, err := u29decode(b)
		require.NoError(t, err, "value %#x", v)
		assert.Equal(t, v, n)
		assert.Equal(t, len(b), sz)
	}
}

func TestU29EncodeOutOfRange(t *testing.T) {
	for _, v := range []int{-1, u29Max + 1, 1 << 40} {
		_, err := u29encode(nil, v)
		assert.ErrorIs(t, err, ErrValueOutOfRange, "value %#x", v)
	}
}

func TestU29DecodeUnderrun(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{},
		{0x80},
		{0x80, 0x80},
		{0x80, 0x80, 0x80},
	} {
		_, _, err := u29decode(b)
		assert.ErrorIs(t, err, ErrBufferUnderrun, "input %v", b)
	}
}

func TestU29FourthByteTerminates(t *testing.T) {
	// The fourth byte contributes all eight bits and never continues,
	// even with its high bit set.
	n, sz, err := u29decode([]byte{0x80, 0x80, 0x80, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 0xff, n)
	assert.Equal(t, 4, sz)
}
