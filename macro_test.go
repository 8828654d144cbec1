package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackInsertsNoPadBeforeEachInstruction(t *testing.T) {
	add := NewAdd(R(0), Imm(1), Imm(2))
	exit := NewExit(Imm(0))

	packed := Pack(add, exit)
	items, ok := packed.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)

	_, isNoPad0 := items[0].(NoPad)
	assert.True(t, isNoPad0)
	assert.Equal(t, Instruction(add), items[1])

	_, isNoPad1 := items[2].(NoPad)
	assert.True(t, isNoPad1)
	assert.Equal(t, Instruction(exit), items[3])
}

func TestPackFlattensNestedCode(t *testing.T) {
	lab := NewLabel("here")
	nop := NewNop()
	packed := Pack([]Code{lab, []Code{nop}})
	items, ok := packed.([]any)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Same(t, lab, items[0])
	_, isNoPad := items[1].(NoPad)
	assert.True(t, isNoPad)
	assert.Equal(t, Instruction(nop), items[2])
}

func TestPackedSequenceSurvivesLayout(t *testing.T) {
	add := NewAdd(R(0), Imm(1), Imm(2))
	s := NewScript(Pack(add), nil, true)
	_, err := s.Build()
	require.NoError(t, err)
}
