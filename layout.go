// Completion: 100% - Fixpoint layout engine complete
package bajo

import "math/rand"

// layout.go is the centerpiece of the package: Layout (the Python
// original's BuildCtx) holds the address/size assignment a Script
// converges on, and buildLayout is the fixpoint search that produces one
// (spec section 4.E). The algorithm, unchanged from the original:
//
//  1. Pre-analysis: walk the flattened code once, assigning each
//     instruction a pessimistic (MaxSize) address/size and attaching any
//     preceding Label/Align/NoPad to it.
//  2. Iterate: recompute every instruction's real address (honoring any
//     alignment requirement) and SizeFor-based size against the layout
//     so far, and record a snapshot of the address assignment.
//  3. Converge once the last three snapshots are identical - variable-
//     length operand encodings can only shrink or grow the addresses
//     that depend on them a bounded number of times before settling.
//  4. If convergence stalls, inject a deterministic (seed 42) Align(4)
//     onto a randomly chosen, not-already-constrained instruction and
//     restart the search; this breaks address oscillations that would
//     otherwise loop forever. Give up after MaxPasses such attempts.
//  5. Once converged, splice in single-byte Nop instructions to fill any
//     gaps Align directives left, so the final layout has no holes.
//  6. Verify the final code range fits the environment's code region and
//     that every instruction's operands check out.
type Layout struct {
	env          *Environment
	labelsByInst map[*Label]Instruction
	insts        []Instruction
	addrs        map[Instruction]uint32
	sizes        map[Instruction]int
	aligns       map[Instruction]int
	nopads       map[Instruction]struct{}
	guard        *cycleGuard
}

func newLayout(env *Environment) *Layout {
	return &Layout{
		env:          env,
		labelsByInst: make(map[*Label]Instruction),
		addrs:        make(map[Instruction]uint32),
		sizes:        make(map[Instruction]int),
		aligns:       make(map[Instruction]int),
		nopads:       make(map[Instruction]struct{}),
		guard:        newCycleGuard(),
	}
}

// AddrOfInst resolves the final address of inst.
func (lay *Layout) AddrOfInst(inst Instruction) (uint32, error) {
	addr, ok := lay.addrs[inst]
	if !ok {
		return 0, newErr(MissingDef, "no such instruction in this layout", inst)
	}
	return addr, nil
}

// AddrOfLabel resolves the address of the instruction a label marks.
func (lay *Layout) AddrOfLabel(l *Label) (uint32, error) {
	inst, ok := lay.labelsByInst[l]
	if !ok {
		return 0, newErr(MissingDef, "no such label in this layout", l.Name)
	}
	return lay.AddrOfInst(inst)
}

// SizeOf returns the final encoded size of inst.
func (lay *Layout) SizeOf(inst Instruction) int { return lay.sizes[inst] }

// NamedRegister resolves a register name to its index via the environment.
func (lay *Layout) NamedRegister(name string) (uint32, error) {
	idx, ok := lay.env.NamedRegisters[name]
	if !ok {
		return 0, newErr(MissingDef, "no such named register", name)
	}
	return idx, nil
}

// codeRangeUsed returns [lo, hi) spanned by the actual instruction
// sequence, which may be narrower than the environment's code region.
func (lay *Layout) codeRangeUsed() (uint32, uint32) {
	if len(lay.insts) == 0 {
		return lay.env.CodeRegion.Start, lay.env.CodeRegion.Start
	}
	first, last := lay.insts[0], lay.insts[len(lay.insts)-1]
	return lay.addrs[first], lay.addrs[last] + uint32(lay.sizes[last])
}

// IsCode reports whether addr falls within the instructions actually laid
// out, not merely the environment's overall code region.
func (lay *Layout) IsCode(addr uint32) bool {
	lo, hi := lay.codeRangeUsed()
	return addr >= lo && addr < hi
}

// IsRAM reports whether addr falls within the environment's RAM region.
func (lay *Layout) IsRAM(addr uint32) bool { return lay.env.RAMRegion.contains(addr) }

// CheckAccessRange validates that a width-byte access starting at addr
// stays inside whichever region (code or RAM) addr itself belongs to.
func (lay *Layout) CheckAccessRange(addr uint32, width uint32) error {
	if width == 0 {
		return nil
	}
	hi := addr + width - 1
	switch {
	case lay.IsCode(addr):
		if !lay.IsCode(hi) {
			return newErr(Addr, "access crosses out of the code region", addr, width)
		}
	case lay.IsRAM(addr):
		if !lay.IsRAM(hi) {
			return newErr(Addr, "access crosses out of the ram region", addr, width)
		}
	default:
		return newErr(Addr, "address outside of any region", addr)
	}
	return nil
}

// check verifies the converged layout: the used code range must fit
// inside the environment's code region, and every instruction's operands
// must check out against the final addresses.
func (lay *Layout) check() error {
	if len(lay.insts) == 0 {
		return nil
	}
	_, hi := lay.codeRangeUsed()
	last := hi - 1
	avail := lay.env.CodeRegion
	if !(avail.Start <= last && last < avail.End) {
		return newErr(Addr, "available code range overflow", hi, avail)
	}
	for _, inst := range lay.insts {
		if err := inst.CheckAgainst(lay); err != nil {
			return err
		}
	}
	return nil
}

func addrMapsEqual(a, b map[Instruction]uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// buildLayout runs the fixpoint search described above over a flattened
// code sequence (Instructions, *Labels, and Directives in emission
// order) and returns the converged Layout.
func buildLayout(code []any, env *Environment) (*Layout, error) {
	lay := newLayout(env)
	start := env.CodeRegion.Start

	pendingLabels := map[*Label]struct{}{}
	pendingAlign := 0
	pendingNoPad := false

	p := start
	for _, obj := range code {
		switch v := obj.(type) {
		case *Label:
			pendingLabels[v] = struct{}{}
		case Align:
			pendingAlign = v.N
		case NoPad:
			pendingNoPad = true
		case Instruction:
			lay.addrs[v] = p
			size := v.MaxSize()
			lay.sizes[v] = size
			p += uint32(size)
			if pendingAlign != 0 {
				lay.aligns[v] = pendingAlign
				pendingAlign = 0
			}
			if pendingNoPad {
				lay.nopads[v] = struct{}{}
				pendingNoPad = false
			}
			for lab := range pendingLabels {
				lay.labelsByInst[lab] = v
				delete(pendingLabels, lab)
			}
		}
	}

	for _, obj := range code {
		if inst, ok := obj.(Instruction); ok {
			lay.insts = append(lay.insts, inst)
		}
	}

	if len(lay.insts) == 0 {
		return lay, nil
	}

	var snapshots []map[Instruction]uint32
	var rnd *rand.Rand
	nextFixThreshold := env.MaxPasses
	remainingFixes := env.MaxPasses

	for {
		p := start
		for _, inst := range lay.insts {
			align := lay.aligns[inst]
			if align == 0 {
				align = 1
			}
			if rem := p % uint32(align); rem != 0 {
				p += uint32(align) - rem
			}
			lay.addrs[inst] = p
			size, err := inst.SizeFor(lay)
			if err != nil {
				return nil, err
			}
			lay.sizes[inst] = size
			p += uint32(size)
		}

		snapshot := make(map[Instruction]uint32, len(lay.addrs))
		for k, v := range lay.addrs {
			snapshot[k] = v
		}
		snapshots = append(snapshots, snapshot)

		n := len(snapshots)
		debugf("pass %d: %d instructions laid out, code ends at %#x", n, len(lay.insts), p)
		if n >= 3 && addrMapsEqual(snapshots[n-1], snapshots[n-2]) && addrMapsEqual(snapshots[n-2], snapshots[n-3]) {
			debugf("converged after %d passes", n)
			break
		}

		if n >= nextFixThreshold {
			if remainingFixes > 0 {
				remainingFixes--
				nextFixThreshold += env.MaxPasses
				if rnd == nil {
					rnd = rand.New(rand.NewSource(42))
				}
				var candidates []Instruction
				for _, inst := range lay.insts {
					_, noPad := lay.nopads[inst]
					_, aligned := lay.aligns[inst]
					if !noPad && !aligned {
						candidates = append(candidates, inst)
					}
				}
				if len(candidates) > 0 {
					pick := candidates[rnd.Intn(len(candidates))]
					lay.aligns[pick] = 4
					debugf("pass %d did not settle, injecting align(4) to break oscillation", n)
					continue
				}
			}
			return nil, newErr(Build, "failed to converge", n)
		}
	}

	if len(lay.aligns) > 0 {
		patched := make([]Instruction, 0, len(lay.insts))
		p := start
		for _, inst := range lay.insts {
			assigned := lay.addrs[inst]
			for p < assigned {
				nop := NewNop()
				patched = append(patched, nop)
				lay.addrs[nop] = p
				size, err := nop.SizeFor(lay)
				if err != nil {
					return nil, err
				}
				lay.sizes[nop] = size
				p += uint32(size)
			}
			patched = append(patched, inst)
			p = assigned + uint32(lay.sizes[inst])
		}
		lay.insts = patched
	}

	if err := lay.check(); err != nil {
		return nil, err
	}

	return lay, nil
}
