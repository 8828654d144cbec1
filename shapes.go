// Completion: 100% - Shared instruction shapes complete
package bajo

// shapes.go factors out the handful of operand-arity patterns the whole
// instruction set is built from (spec section 4.C), mirroring core.py's
// _TA / _TAB / _TVarSrc / _BranchIf / _MoveIf mixins. Go has no class
// inheritance, so each shape is a constructor that assembles the right
// tgts/srcs tuple on top of the shared op base; concrete instruction files
// call these instead of building an op by hand.

// taInst is the "t = f(a)" shape: one target, one source.
type taInst struct{ op }

func newTA(opcode byte, t Tgt, a Src) taInst {
	return taInst{newOp(opcode, opcodeNames[opcode], false, false, []Tgt{t}, []Src{a})}
}

// tabInst is the "t = f(a, b)" shape: one target, two sources.
type tabInst struct{ op }

func newTAB(opcode byte, t Tgt, a, b Src) tabInst {
	return tabInst{newOp(opcode, opcodeNames[opcode], false, false, []Tgt{t}, []Src{a, b})}
}

// tVarSrcInst is the "t = f(a, b, ...)" shape: one target, a variable
// count of sources, the count itself carried on the wire as a leading
// varint (spec section 4.C, is_varsrc).
type tVarSrcInst struct{ op }

func newTVarSrc(opcode byte, t Tgt, first Src, rest ...Src) tVarSrcInst {
	srcs := append([]Src{first}, rest...)
	return tVarSrcInst{newOp(opcode, opcodeNames[opcode], false, true, []Tgt{t}, srcs)}
}

// buildBranchIf assembles "if a cmp b then pc += offset": no targets, and
// the third source is the PC-relative Offset computed against the
// instruction itself, so addr can be given as an absolute code address or
// expression and the caller never computes the displacement by hand.
// self must be the instruction under construction - Offset captures its
// identity, not its (not yet assigned) op state.
func buildBranchIf(self Instruction, opcode byte, a, b Src, addr any) op {
	offset := NewOffset(self, addr)
	return newOp(opcode, opcodeNames[opcode], false, false, nil, []Src{a, b, offset})
}

// buildOffsetOnly assembles "pc += offset" / "lr = pc, pc += offset"
// style instructions whose single source is a PC-relative Offset to addr.
func buildOffsetOnly(self Instruction, opcode byte, tgts []Tgt, addr any) op {
	offset := NewOffset(self, addr)
	return newOp(opcode, opcodeNames[opcode], false, false, tgts, []Src{offset})
}

// moveIfInst is "t = (a cmp b) ? x : y": one target, four sources.
type moveIfInst struct{ op }

func newMoveIf(opcode byte, t Tgt, a, b, x, y Src) *moveIfInst {
	return &moveIfInst{newOp(opcode, opcodeNames[opcode], false, false, []Tgt{t}, []Src{a, b, x, y})}
}
