package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHalfwordInRangePasses(t *testing.T) {
	lay := newLayout(DefaultEnvironment)
	ld := NewLdH(R(0), M(0x100))
	assert.NoError(t, ld.CheckAgainst(lay))
}

func TestStoreHalfwordCrossingRegionEndFails(t *testing.T) {
	lay := newLayout(DefaultEnvironment)
	// 0xFFFF is the last valid RAM byte; a 2-byte store from there runs
	// one byte past the RAM region's end.
	st := NewStH(M(0xFFFF), Imm(0))
	err := st.CheckAgainst(lay)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, Addr, kind)
}

func TestLoadByteNeverCrossesRegion(t *testing.T) {
	lay := newLayout(DefaultEnvironment)
	ld := NewLdB(R(0), M(0xFFFF))
	assert.NoError(t, ld.CheckAgainst(lay))
}
