// Completion: 100% - LongMul/LongMulU instructions complete
package bajo

// LongMul computes th:tl = a * b, the full 64-bit signed product split
// across a low and a high 32-bit target.
type LongMul struct{ op }

// NewLongMul constructs th:tl = a * b, signed.
func NewLongMul(tl, th Tgt, a, b Src) *LongMul {
	return &LongMul{newOp(opLongMul, opcodeNames[opLongMul], false, false, []Tgt{tl, th}, []Src{a, b})}
}

// LongMulU computes th:tl = a * b, the full 64-bit unsigned product split
// across a low and a high 32-bit target.
type LongMulU struct{ op }

// NewLongMulU constructs th:tl = a * b, unsigned.
func NewLongMulU(tl, th Tgt, a, b Src) *LongMulU {
	return &LongMulU{newOp(opLongMulU, opcodeNames[opLongMulU], false, false, []Tgt{tl, th}, []Src{a, b})}
}
