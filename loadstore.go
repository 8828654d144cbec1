// Completion: 100% - Load/store instructions complete
package bajo

// loadstore.go implements the sub-word memory instructions. Beyond the
// generic Op.check_against (which only validates the memory operand's
// base address), each of these also validates that the full accessed
// byte range - base address through base+width-1 - stays inside the
// region the base address itself resolved into. The original
// implementation only checks the base byte; GLOSSARY/open-questions asks
// for the reimplementation to close that gap, so StH(M[0xFFFF], t) no
// longer silently checks only the last in-bounds byte and writes past
// the region's end undetected. Single-byte accesses (LdB, LdBU, StB)
// cannot cross a region boundary and need no extra check.

// LdB computes t = sign_extend(a[7:0]), a signed byte load.
type LdB struct{ taInst }

// NewLdB constructs t = sign_extend(a[7:0]).
func NewLdB(t Tgt, a Src) *LdB { return &LdB{newTA(opLdB, t, a)} }

func (l *LdB) CheckAgainst(lay *Layout) error {
	if err := l.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(l.srcs[0], lay, 1)
}

// LdH computes t = sign_extend(a[15:0]), a signed halfword load.
type LdH struct{ taInst }

// NewLdH constructs t = sign_extend(a[15:0]).
func NewLdH(t Tgt, a Src) *LdH { return &LdH{newTA(opLdH, t, a)} }

func (l *LdH) CheckAgainst(lay *Layout) error {
	if err := l.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(l.srcs[0], lay, 2)
}

// LdBU computes t = zero_extend(a[7:0]), an unsigned byte load.
type LdBU struct{ taInst }

// NewLdBU constructs t = zero_extend(a[7:0]).
func NewLdBU(t Tgt, a Src) *LdBU { return &LdBU{newTA(opLdBU, t, a)} }

func (l *LdBU) CheckAgainst(lay *Layout) error {
	if err := l.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(l.srcs[0], lay, 1)
}

// LdHU computes t = zero_extend(a[15:0]), an unsigned halfword load.
type LdHU struct{ taInst }

// NewLdHU constructs t = zero_extend(a[15:0]).
func NewLdHU(t Tgt, a Src) *LdHU { return &LdHU{newTA(opLdHU, t, a)} }

func (l *LdHU) CheckAgainst(lay *Layout) error {
	if err := l.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(l.srcs[0], lay, 2)
}

// StB stores a[7:0] into t[7:0], leaving the rest of t unchanged.
type StB struct{ taInst }

// NewStB constructs t[7:0] = a[7:0].
func NewStB(t Tgt, a Src) *StB { return &StB{newTA(opStB, t, a)} }

func (s *StB) CheckAgainst(lay *Layout) error {
	if err := s.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(s.tgts[0], lay, 1)
}

// StH stores a[15:0] into t[15:0], leaving the rest of t unchanged.
type StH struct{ taInst }

// NewStH constructs t[15:0] = a[15:0].
func NewStH(t Tgt, a Src) *StH { return &StH{newTA(opStH, t, a)} }

func (s *StH) CheckAgainst(lay *Layout) error {
	if err := s.taInst.CheckAgainst(lay); err != nil {
		return err
	}
	return checkAccessWidth(s.tgts[0], lay, 2)
}

// checkAccessWidth validates that a width-byte access starting at
// operand's resolved address stays inside the region that address alone
// was already found to belong to. Operands that don't resolve to a
// concrete address (e.g. a bare Imm used where an address is expected,
// which fails earlier in the generic check) are left alone here.
func checkAccessWidth(operand Operand, lay *Layout, width uint32) error {
	a, ok := operand.(Addressable)
	if !ok || width <= 1 {
		return nil
	}
	addr, err := a.AddrFor(lay)
	if err != nil {
		return err
	}
	return lay.CheckAccessRange(addr, width)
}
