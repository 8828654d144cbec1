// Completion: 100% - Relative branch and call instructions complete
package bajo

// Br sets pc += offset, where offset is computed PC-relative to addr at
// encode time. Prefer this over Jmp for position-independent code.
type Br struct{ op }

// NewBr constructs pc += offset(addr).
func NewBr(addr any) *Br {
	inst := &Br{}
	inst.op = buildOffsetOnly(inst, opBr, nil, addr)
	return inst
}

// BrLnk sets lr = pc, pc += offset: a PC-relative call.
type BrLnk struct{ op }

// NewBrLnk constructs lr = pc, pc += offset(addr).
func NewBrLnk(lr Tgt, addr any) *BrLnk {
	inst := &BrLnk{}
	inst.op = buildOffsetOnly(inst, opBrLnk, []Tgt{lr}, addr)
	return inst
}

// BrEq branches to addr (PC-relative) if a == b.
type BrEq struct{ op }

// NewBrEq constructs: if a == b then pc += offset(addr).
func NewBrEq(a, b Src, addr any) *BrEq {
	inst := &BrEq{}
	inst.op = buildBranchIf(inst, opBrEq, a, b, addr)
	return inst
}

// BrNe branches to addr (PC-relative) if a != b.
type BrNe struct{ op }

// NewBrNe constructs: if a != b then pc += offset(addr).
func NewBrNe(a, b Src, addr any) *BrNe {
	inst := &BrNe{}
	inst.op = buildBranchIf(inst, opBrNe, a, b, addr)
	return inst
}

// BrGt branches to addr (PC-relative) if a > b, signed.
type BrGt struct{ op }

// NewBrGt constructs: if a > b then pc += offset(addr), signed.
func NewBrGt(a, b Src, addr any) *BrGt {
	inst := &BrGt{}
	inst.op = buildBranchIf(inst, opBrGt, a, b, addr)
	return inst
}

// BrGe branches to addr (PC-relative) if a >= b, signed.
type BrGe struct{ op }

// NewBrGe constructs: if a >= b then pc += offset(addr), signed.
func NewBrGe(a, b Src, addr any) *BrGe {
	inst := &BrGe{}
	inst.op = buildBranchIf(inst, opBrGe, a, b, addr)
	return inst
}

// BrGtU branches to addr (PC-relative) if a > b, unsigned.
type BrGtU struct{ op }

// NewBrGtU constructs: if a > b then pc += offset(addr), unsigned.
func NewBrGtU(a, b Src, addr any) *BrGtU {
	inst := &BrGtU{}
	inst.op = buildBranchIf(inst, opBrGtU, a, b, addr)
	return inst
}

// BrGeU branches to addr (PC-relative) if a >= b, unsigned.
type BrGeU struct{ op }

// NewBrGeU constructs: if a >= b then pc += offset(addr), unsigned.
func NewBrGeU(a, b Src, addr any) *BrGeU {
	inst := &BrGeU{}
	inst.op = buildBranchIf(inst, opBrGeU, a, b, addr)
	return inst
}

// As with the Tst family, the "less than" branches have no opcode of
// their own: they are the Gt/Ge branch with operands swapped.

// NewBrLt constructs: if a < b then pc += offset(addr), signed.
func NewBrLt(a, b Src, addr any) *BrGt { return NewBrGt(b, a, addr) }

// NewBrLe constructs: if a <= b then pc += offset(addr), signed.
func NewBrLe(a, b Src, addr any) *BrGe { return NewBrGe(b, a, addr) }

// NewBrLtU constructs: if a < b then pc += offset(addr), unsigned.
func NewBrLtU(a, b Src, addr any) *BrGtU { return NewBrGtU(b, a, addr) }

// NewBrLeU constructs: if a <= b then pc += offset(addr), unsigned.
func NewBrLeU(a, b Src, addr any) *BrGeU { return NewBrGeU(b, a, addr) }
