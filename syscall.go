// Completion: 100% - Host-call instructions complete
package bajo

// syscall.go implements the host-call family: the fully general Sys, its
// fixed-arity shorthands Sys00..Sys24 (no result, one result, or two
// results, crossed with 0-4 arguments), and Exit. The shorthands exist
// purely to save wire bytes over Sys for the overwhelmingly common small
// arities - a code generator is expected to pick the shorthand matching
// a given host call's signature rather than always emitting Sys. Sys00
// through Sys24 are never meant to be written by hand; user code reaches
// them through typed per-syscall wrapper functions it defines itself.

// Sys calls host function sysfuncs[func] with the argument vector args
// and stores its (possibly multiple) results into res.
type Sys struct{ op }

// NewSys constructs a fully general host call.
func NewSys(fn Src, res []Tgt, args []Src) *Sys {
	srcs := append([]Src{fn}, args...)
	return &Sys{newOp(opSys, opcodeNames[opSys], true, true, res, srcs)}
}

// Exit terminates the program with the given return code.
type Exit struct{ op }

// NewExit constructs an exit with return code rc.
func NewExit(rc Src) *Exit {
	return &Exit{newOp(opExit, opcodeNames[opExit], false, false, nil, []Src{rc})}
}

// Sys00 calls sysfuncs[func]() with no arguments and no result.
type Sys00 struct{ op }

// NewSys00 constructs sysfuncs[fn]().
func NewSys00(fn Src) *Sys00 { return &Sys00{newOp(opSys00, opcodeNames[opSys00], false, false, nil, []Src{fn})} }

// Sys01 calls sysfuncs[func](a) with no result.
type Sys01 struct{ op }

// NewSys01 constructs sysfuncs[fn](a).
func NewSys01(fn, a Src) *Sys01 {
	return &Sys01{newOp(opSys01, opcodeNames[opSys01], false, false, nil, []Src{fn, a})}
}

// Sys02 calls sysfuncs[func](a, b) with no result.
type Sys02 struct{ op }

// NewSys02 constructs sysfuncs[fn](a, b).
func NewSys02(fn, a, b Src) *Sys02 {
	return &Sys02{newOp(opSys02, opcodeNames[opSys02], false, false, nil, []Src{fn, a, b})}
}

// Sys03 calls sysfuncs[func](a, b, c) with no result.
type Sys03 struct{ op }

// NewSys03 constructs sysfuncs[fn](a, b, c).
func NewSys03(fn, a, b, c Src) *Sys03 {
	return &Sys03{newOp(opSys03, opcodeNames[opSys03], false, false, nil, []Src{fn, a, b, c})}
}

// Sys04 calls sysfuncs[func](a, b, c, d) with no result.
type Sys04 struct{ op }

// NewSys04 constructs sysfuncs[fn](a, b, c, d).
func NewSys04(fn, a, b, c, d Src) *Sys04 {
	return &Sys04{newOp(opSys04, opcodeNames[opSys04], false, false, nil, []Src{fn, a, b, c, d})}
}

// Sys10 computes t = sysfuncs[func]().
type Sys10 struct{ op }

// NewSys10 constructs t = sysfuncs[fn]().
func NewSys10(fn Src, t Tgt) *Sys10 {
	return &Sys10{newOp(opSys10, opcodeNames[opSys10], false, false, []Tgt{t}, []Src{fn})}
}

// Sys11 computes t = sysfuncs[func](a).
type Sys11 struct{ op }

// NewSys11 constructs t = sysfuncs[fn](a).
func NewSys11(fn Src, t Tgt, a Src) *Sys11 {
	return &Sys11{newOp(opSys11, opcodeNames[opSys11], false, false, []Tgt{t}, []Src{fn, a})}
}

// Sys12 computes t = sysfuncs[func](a, b).
type Sys12 struct{ op }

// NewSys12 constructs t = sysfuncs[fn](a, b).
func NewSys12(fn Src, t Tgt, a, b Src) *Sys12 {
	return &Sys12{newOp(opSys12, opcodeNames[opSys12], false, false, []Tgt{t}, []Src{fn, a, b})}
}

// Sys13 computes t = sysfuncs[func](a, b, c).
type Sys13 struct{ op }

// NewSys13 constructs t = sysfuncs[fn](a, b, c).
func NewSys13(fn Src, t Tgt, a, b, c Src) *Sys13 {
	return &Sys13{newOp(opSys13, opcodeNames[opSys13], false, false, []Tgt{t}, []Src{fn, a, b, c})}
}

// Sys14 computes t = sysfuncs[func](a, b, c, d).
type Sys14 struct{ op }

// NewSys14 constructs t = sysfuncs[fn](a, b, c, d).
func NewSys14(fn Src, t Tgt, a, b, c, d Src) *Sys14 {
	return &Sys14{newOp(opSys14, opcodeNames[opSys14], false, false, []Tgt{t}, []Src{fn, a, b, c, d})}
}

// Sys20 computes t, u = sysfuncs[func]().
type Sys20 struct{ op }

// NewSys20 constructs t, u = sysfuncs[fn]().
func NewSys20(fn Src, t, u Tgt) *Sys20 {
	return &Sys20{newOp(opSys20, opcodeNames[opSys20], false, false, []Tgt{t, u}, []Src{fn})}
}

// Sys21 computes t, u = sysfuncs[func](a).
type Sys21 struct{ op }

// NewSys21 constructs t, u = sysfuncs[fn](a).
func NewSys21(fn Src, t, u Tgt, a Src) *Sys21 {
	return &Sys21{newOp(opSys21, opcodeNames[opSys21], false, false, []Tgt{t, u}, []Src{fn, a})}
}

// Sys22 computes t, u = sysfuncs[func](a, b).
type Sys22 struct{ op }

// NewSys22 constructs t, u = sysfuncs[fn](a, b).
func NewSys22(fn Src, t, u Tgt, a, b Src) *Sys22 {
	return &Sys22{newOp(opSys22, opcodeNames[opSys22], false, false, []Tgt{t, u}, []Src{fn, a, b})}
}

// Sys23 computes t, u = sysfuncs[func](a, b, c).
type Sys23 struct{ op }

// NewSys23 constructs t, u = sysfuncs[fn](a, b, c).
func NewSys23(fn Src, t, u Tgt, a, b, c Src) *Sys23 {
	return &Sys23{newOp(opSys23, opcodeNames[opSys23], false, false, []Tgt{t, u}, []Src{fn, a, b, c})}
}

// Sys24 computes t, u = sysfuncs[func](a, b, c, d).
type Sys24 struct{ op }

// NewSys24 constructs t, u = sysfuncs[fn](a, b, c, d).
func NewSys24(fn Src, t, u Tgt, a, b, c, d Src) *Sys24 {
	return &Sys24{newOp(opSys24, opcodeNames[opSys24], false, false, []Tgt{t, u}, []Src{fn, a, b, c, d})}
}
