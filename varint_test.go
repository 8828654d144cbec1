package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 127, 128, 1 << 20, 1 << 27, 1<<34 - 1}
	for _, v := range values {
		enc, err := EncodeVarint(v)
		require.NoError(t, err)
		got, n, err := DecodeVarint(enc)
		require.NoError(t, err)
		assert.Equal(t, len(enc), n)
		assert.Equal(t, v, got)
	}
}

func TestEncodeVarintSmallValuesFitOneByte(t *testing.T) {
	enc, err := EncodeVarint(5)
	require.NoError(t, err)
	assert.Len(t, enc, 1)
}

func TestEncodeVarintTooLarge(t *testing.T) {
	_, err := EncodeVarint(1 << 40)
	require.Error(t, err)
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, Value, kind)
}

func TestDecodeVarintMalformed(t *testing.T) {
	_, _, err := DecodeVarint([]byte{0x00})
	assert.Error(t, err)

	_, _, err = DecodeVarint(nil)
	assert.Error(t, err)
}

func TestEncodeImmValueSignTag(t *testing.T) {
	pos, err := encodeImmValue(5)
	require.NoError(t, err)
	neg, err := encodeImmValue(-5)
	require.NoError(t, err)
	assert.NotEqual(t, pos, neg)

	zero, err := encodeImmValue(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0b00001}, zero)
}

func TestCastS32WrapsUnsignedAboveSignedRange(t *testing.T) {
	assert.Equal(t, int64(-1), castS32(u32Max))
	assert.Equal(t, int64(0), castS32(0))
	assert.Equal(t, int64(s32Max), castS32(s32Max))
}
