// Completion: 100% - Immediate operand complete
package bajo

import "fmt"

// imm.go implements Imm, the "Integer subtype for Imm" spec section 9
// calls for: a plain signed-64-bit carrier validated against one of two
// ranges at construction time, rather than the Python original's
// monkeypatchable global range toggle. See DESIGN.md for why the toggle
// became two constructors instead of an Env/Script field.

// Imm is a signed or unsigned 32-bit immediate literal.
type Imm int64

// NewImm constructs an Imm restricted to the signed 32-bit range
// [-2^31, 2^31), the default preset ("signed-only" in spec section 9).
func NewImm(v int64) (Imm, error) {
	if v < s32Min || v > s32Max {
		return 0, newErr(Value, "immediate outside signed 32-bit range", v)
	}
	return Imm(v), nil
}

// NewImmWide constructs an Imm from the full unsigned 32-bit range,
// the "full-32-bit" preset of spec section 9 - used where the caller
// intends the raw bit pattern of a uint32 rather than its signed value.
func NewImmWide(v uint32) Imm {
	return Imm(int64(v))
}

func (m Imm) MaxSize() int { return maxVarintBytes }

func (m Imm) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return encodeImmValue(int64(m))
}

func (m Imm) CheckAgainst(lay *Layout) error { return nil }

func (m Imm) ReprFor(lay *Layout) string { return fmt.Sprintf("#%d", int64(m)) }

func (m Imm) Equal(other Operand) bool {
	o, ok := other.(Imm)
	return ok && o == m
}

// ResultFor lets Imm satisfy Expr, so it can appear as a leaf of the
// arithmetic expression tree without a separate wrapper type.
func (m Imm) ResultFor(lay *Layout) (int64, error) { return int64(m), nil }
