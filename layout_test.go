package bajo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOscillationBreakerConvergesAndIsDeterministic reproduces the
// hand-off-between-registers layout from the original oscillation
// regression: R[0] is set to a label's own address, then read back
// indirectly and directly at two overlapping widths, with the label's
// data following Exit. Without the alignment-injection fallback in
// buildLayout this input oscillates forever; with it, two independent
// builds against the same seed-42 source must still produce
// byte-identical output.
func TestOscillationBreakerConvergesAndIsDeterministic(t *testing.T) {
	build := func() (*Script, error) {
		env, err := NewEnvironment(
			Region{Start: 0, End: 1024},
			Region{Start: 2030, End: 0xFFFF_FFFF},
			map[string]uint32{},
			16,
		)
		if err != nil {
			return nil, err
		}
		lab := NewLabel("L")
		code := []Code{
			NewMov(R(0), lab),
			NewMov(R(1), NewIMem(R(0), nil)),
			NewMov(R(2), NewCodeAt(lab)),
			NewMov(R(3), NewCodeAt(ExprAdd(lab, Imm(2)))),
			NewExit(Imm(0)),
			lab,
			BytesFrom32(-2),
			BytesFrom16(0x1234),
		}
		return NewScript(code, env, false), nil
	}

	s1, err := build()
	require.NoError(t, err)
	out1, err := s1.Encode()
	require.NoError(t, err, "oscillation breaker must let this input converge")
	require.NotEmpty(t, out1)

	s2, err := build()
	require.NoError(t, err)
	out2, err := s2.Encode()
	require.NoError(t, err)

	assert.Equal(t, out1, out2, "seed-42 alignment injection must pick the same instruction across builds")
}

// TestRMWCompressionShortensMatchingFirstOperands exercises the RMW
// opcode-compression path in op.EncodeFor: an instruction whose first
// source byte-matches its first target elides that source and sets the
// opcode's 0x80 bit, producing an encoding exactly one byte shorter than
// the same instruction shape with distinct operands.
func TestRMWCompressionShortensMatchingFirstOperands(t *testing.T) {
	lay := newLayout(DefaultEnvironment)

	ten, err := NewImm(10)
	require.NoError(t, err)

	rmw := NewAdd(R(0), R(0), ten)
	plain := NewAdd(R(0), R(1), ten)

	rmwEnc, err := rmw.EncodeFor(lay)
	require.NoError(t, err)
	plainEnc, err := plain.EncodeFor(lay)
	require.NoError(t, err)

	assert.Len(t, rmwEnc, len(plainEnc)-1, "matching first source/target must compress by exactly one byte")
	assert.NotZero(t, rmwEnc[0]&0x80, "compressed encoding must set the RMW bit")
	assert.Zero(t, plainEnc[0]&0x80, "distinct first operands must not set the RMW bit")
}
