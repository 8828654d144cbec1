package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptBuildAndEncodeSimpleProgram(t *testing.T) {
	imm5, err := NewImm(5)
	require.NoError(t, err)
	imm3, err := NewImm(3)
	require.NoError(t, err)

	add := NewAdd(R(0), imm5, imm3)
	exit := NewExit(R(0))

	s := NewScript([]Code{add, exit}, nil, false)

	lay, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironment.CodeRegion.Start, lay.addrs[add])

	out, err := s.Encode()
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	listing, err := s.Listing()
	require.NoError(t, err)
	assert.Contains(t, listing, "Add")
	assert.Contains(t, listing, "Exit")
}

func TestScriptImplicitExit(t *testing.T) {
	s := NewScript([]Code{NewNop()}, nil, true)
	lay, err := s.Build()
	require.NoError(t, err)
	require.Len(t, lay.insts, 2)
	_, ok := lay.insts[1].(*Exit)
	assert.True(t, ok)
}

func TestScriptRejectsDuplicateInstruction(t *testing.T) {
	nop := NewNop()
	s := NewScript([]Code{nop, nop}, nil, false)
	_, err := s.Build()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, DuplicateDef, kind)
}

func TestScriptRejectsDetachedLabel(t *testing.T) {
	lab := NewLabel("end")
	s := NewScript([]Code{NewNop(), lab}, nil, false)
	_, err := s.Build()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, DetachedLabel, kind)
}

func TestScriptFlattensNilAndBoolGaps(t *testing.T) {
	var cond bool
	code := []Code{NewNop(), cond, nil, []Code{NewExit(Imm(0))}}
	items := flattenCode(code)
	require.Len(t, items, 2)
}

func TestScriptBranchToLabel(t *testing.T) {
	lab := NewLabel("loop")
	br := NewBr(lab)
	s := NewScript([]Code{lab, NewAdd(R(0), R(0), Imm(1)), br}, nil, true)
	lay, err := s.Build()
	require.NoError(t, err)
	addr, err := lay.AddrOfLabel(lab)
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironment.CodeRegion.Start, addr)

	_, err = s.Encode()
	require.NoError(t, err)
}
