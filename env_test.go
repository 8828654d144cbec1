package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironmentValid(t *testing.T) {
	env, err := NewEnvironment(
		Region{Start: 0, End: 0x1000},
		Region{Start: 0x1000, End: 0x2000},
		map[string]uint32{"sp": 13},
		4,
	)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1000), env.RAMRegion.End)
}

func TestNewEnvironmentRejectsOverlap(t *testing.T) {
	_, err := NewEnvironment(
		Region{Start: 0, End: 0x2000},
		Region{Start: 0x1000, End: 0x3000},
		nil, 4,
	)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, Value, kind)
}

func TestNewEnvironmentRejectsUnalignedRAM(t *testing.T) {
	_, err := NewEnvironment(
		Region{Start: 0, End: 0x1001},
		Region{Start: 0x2000, End: 0x3000},
		nil, 4,
	)
	require.Error(t, err)
}

func TestNewEnvironmentRejectsLowPassBudget(t *testing.T) {
	_, err := NewEnvironment(
		Region{Start: 0, End: 0x1000},
		Region{Start: 0x1000, End: 0x2000},
		nil, 2,
	)
	require.Error(t, err)
}

func TestRegionContains(t *testing.T) {
	r := Region{Start: 10, End: 20}
	assert.True(t, r.contains(10))
	assert.True(t, r.contains(19))
	assert.False(t, r.contains(20))
	assert.False(t, r.contains(9))
}
