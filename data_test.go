package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesEncodesVerbatim(t *testing.T) {
	b := NewBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	lay := newLayout(DefaultEnvironment)
	enc, err := b.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, enc)
	assert.Equal(t, 4, b.MaxSize())
}

func TestBytesFromConstructors(t *testing.T) {
	lay := newLayout(DefaultEnvironment)

	b32 := BytesFrom32(0x01020304)
	enc, err := b32.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, enc)

	b16 := BytesFrom16(0x0102)
	enc, err = b16.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01}, enc)

	b8 := BytesFrom8(0x7f)
	enc, err = b8.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7f}, enc)

	bs := BytesFromString("hi", true)
	enc, err = bs.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 'i', 0}, enc)
}

func TestDataExprOverLabelAddress(t *testing.T) {
	lab := NewLabel("target")
	exit := NewExit(Imm(0))
	s := NewScript([]Code{NewDataExpr(lab, 4), lab, exit}, nil, false)

	lay, err := s.Build()
	require.NoError(t, err)

	addr, err := lay.AddrOfLabel(lab)
	require.NoError(t, err)

	de := lay.insts[0].(*DataExpr)
	enc, err := de.EncodeFor(lay)
	require.NoError(t, err)
	require.Len(t, enc, 4)
	got := uint32(enc[0]) | uint32(enc[1])<<8 | uint32(enc[2])<<16 | uint32(enc[3])<<24
	assert.Equal(t, addr, got)
}

func TestDataExprOverExpression(t *testing.T) {
	lay := newLayout(DefaultEnvironment)
	de := NewDataExpr(ExprAdd(Imm(2), Imm(3)), 4)
	enc, err := de.EncodeFor(lay)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 0, 0, 0}, enc)
}

func TestDataExprRejectsUnsupportedWidth(t *testing.T) {
	lay := newLayout(DefaultEnvironment)
	de := NewDataExpr(Imm(1), 16)
	_, err := de.EncodeFor(lay)
	assert.Error(t, err)
}
