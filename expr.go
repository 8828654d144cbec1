// Completion: 100% - Expression algebra complete
package bajo

import "fmt"

// expr.go implements the ImmExpr side of the operand algebra (spec section
// 3.1/4.B): the five binary arithmetic nodes, SizeOf, and Offset - the
// construct every relative branch wraps its target in to get a
// PC-relative displacement. Every node evaluates left-to-right under usual
// precedence with no intermediate truncation, exactly as spec section 4.B
// specifies; Go's int64 intermediate gives ample headroom over the 32-bit
// operand domain this module actually encodes.

type binOp int

const (
	exprOpAdd binOp = iota
	exprOpSub
	exprOpMul
	exprOpDiv
	exprOpMod
)

func (o binOp) symbol() string {
	switch o {
	case exprOpAdd:
		return "+"
	case exprOpSub:
		return "-"
	case exprOpMul:
		return "*"
	case exprOpDiv:
		return "/"
	case exprOpMod:
		return "%"
	default:
		return "?"
	}
}

// binExpr is the shared implementation behind ExprAdd, ExprSub, ExprMul,
// ExprDiv, and ExprMod.
type binExpr struct {
	op   binOp
	a, b any // Instruction, Addressable, Imm, or Expr
}

func newBinExpr(op binOp, a, b any) *binExpr {
	return &binExpr{op: op, a: a, b: b}
}

func (e *binExpr) MaxSize() int { return maxVarintBytes }

func (e *binExpr) ResultFor(lay *Layout) (int64, error) {
	a, err := resolveValue(e.a, lay)
	if err != nil {
		return 0, err
	}
	b, err := resolveValue(e.b, lay)
	if err != nil {
		return 0, err
	}
	switch e.op {
	case exprOpAdd:
		return a + b, nil
	case exprOpSub:
		return a - b, nil
	case exprOpMul:
		return a * b, nil
	case exprOpDiv:
		if b == 0 {
			return 0, newErr(Value, "division by zero in expression", e.a, e.b)
		}
		return a / b, nil
	case exprOpMod:
		if b == 0 {
			return 0, newErr(Value, "modulo by zero in expression", e.a, e.b)
		}
		return a % b, nil
	default:
		return 0, newErr(Value, "unknown expression operator", e.op)
	}
}

func (e *binExpr) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, e, func() ([]byte, error) {
		v, err := e.ResultFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeImmValue(v)
	})
}

func (e *binExpr) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, e, func() error {
		if a, ok := e.a.(Operand); ok {
			if err := a.CheckAgainst(lay); err != nil {
				return err
			}
		}
		if b, ok := e.b.(Operand); ok {
			if err := b.CheckAgainst(lay); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *binExpr) ReprFor(lay *Layout) string {
	return guardRepr(lay, e, "Expr", func() string {
		return fmt.Sprintf("(%v %s %v)", e.a, e.op.symbol(), e.b)
	})
}

func (e *binExpr) Equal(other Operand) bool {
	o, ok := other.(*binExpr)
	return ok && o.op == e.op && leafEqual(e.a, o.a) && leafEqual(e.b, o.b)
}

// leafEqual compares two expression leaves: operands structurally via
// Equal, anything else (instructions) by identity.
func leafEqual(a, b any) bool {
	if ao, ok := a.(Operand); ok {
		bo, ok := b.(Operand)
		return ok && ao.Equal(bo)
	}
	return a == b
}

// Every binary expression constructor is named Expr<Op> rather than bare
// Add/Sub/Mul/Div/Mod: those short names are already taken by the Add,
// Sub, Mul, Div, and Rem instruction types, and Go has no separate
// namespace for types vs functions within a package.

// ExprAdd constructs the expression a + b.
func ExprAdd(a, b any) Expr { return newBinExpr(exprOpAdd, a, b) }

// ExprSub constructs the expression a - b.
func ExprSub(a, b any) Expr { return newBinExpr(exprOpSub, a, b) }

// ExprMul constructs the expression a * b.
func ExprMul(a, b any) Expr { return newBinExpr(exprOpMul, a, b) }

// ExprDiv constructs the truncating-division expression a / b.
func ExprDiv(a, b any) Expr { return newBinExpr(exprOpDiv, a, b) }

// ExprMod constructs the remainder expression a % b.
func ExprMod(a, b any) Expr { return newBinExpr(exprOpMod, a, b) }

// SizeOf resolves to the final encoded size of an instruction.
type SizeOf struct {
	Inst Instruction
}

// NewSizeOf constructs a SizeOf expression over inst.
func NewSizeOf(inst Instruction) SizeOf { return SizeOf{Inst: inst} }

func (s SizeOf) MaxSize() int { return maxVarintBytes }

func (s SizeOf) ResultFor(lay *Layout) (int64, error) {
	return int64(lay.SizeOf(s.Inst)), nil
}

func (s SizeOf) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, s, func() ([]byte, error) {
		v, err := s.ResultFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeImmValue(v)
	})
}

func (s SizeOf) CheckAgainst(lay *Layout) error { return nil }

func (s SizeOf) ReprFor(lay *Layout) string {
	v, _ := s.ResultFor(lay)
	return fmt.Sprintf("sizeof(%v)=%d", s.Inst, v)
}

func (s SizeOf) Equal(other Operand) bool {
	o, ok := other.(SizeOf)
	return ok && o.Inst == s.Inst
}

// Offset computes the PC-relative displacement a branch at base must
// carry to reach target: address(target) - (address(base) + sizeof(base)).
// Every relative-branch instruction wraps its target in an Offset
// internally (spec section 4.B); user code never constructs one directly,
// but it is exported so custom relative-addressing instructions can.
type Offset struct {
	Base   Instruction
	Target any // Instruction, Addressable, or Expr
}

// NewOffset constructs a PC-relative offset expression from base to target.
func NewOffset(base Instruction, target any) *Offset {
	return &Offset{Base: base, Target: target}
}

func (o *Offset) MaxSize() int { return maxVarintBytes }

func (o *Offset) ResultFor(lay *Layout) (int64, error) {
	tgt, err := resolveValue(o.Target, lay)
	if err != nil {
		return 0, err
	}
	baseAddr, err := lay.AddrOfInst(o.Base)
	if err != nil {
		return 0, err
	}
	baseSize := lay.SizeOf(o.Base)
	return tgt - (int64(baseAddr) + int64(baseSize)), nil
}

func (o *Offset) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, o, func() ([]byte, error) {
		v, err := o.ResultFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeImmValue(v)
	})
}

func (o *Offset) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, o, func() error {
		if t, ok := o.Target.(Operand); ok {
			return t.CheckAgainst(lay)
		}
		return nil
	})
}

func (o *Offset) ReprFor(lay *Layout) string {
	return guardRepr(lay, o, "Offset", func() string {
		v, _ := o.ResultFor(lay)
		return fmt.Sprintf("#%d:<%v>", v, o.Target)
	})
}

func (o *Offset) Equal(other Operand) bool {
	ov, ok := other.(*Offset)
	return ok && ov.Base == o.Base && leafEqual(o.Target, ov.Target)
}
