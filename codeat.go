// Completion: 100% - Code-address operand complete
package bajo

import "fmt"

// codeat.go implements CodeAt, "memory whose address is the code address
// of a label or instruction, optionally plus an expression" (spec section
// 3.1). It wraps either an Instruction or an Expr and checks that the
// resolved address lands in the code region, unlike plain MemAddr which
// accepts either region.

// CodeAt is memory at the resolved address of an instruction or
// expression, e.g. M[label] or M[label + 4].
type CodeAt struct {
	Obj any // Instruction or Expr
}

// NewCodeAt constructs a code-address operand from an instruction or an
// expression (e.g. a Label, or Label+constant).
func NewCodeAt(obj any) CodeAt { return CodeAt{Obj: obj} }

func (c CodeAt) MaxSize() int { return maxVarintBytes }

func (c CodeAt) AddrFor(lay *Layout) (uint32, error) {
	switch v := c.Obj.(type) {
	case Instruction:
		return lay.AddrOfInst(v)
	case Expr:
		val, err := v.ResultFor(lay)
		if err != nil {
			return 0, err
		}
		return uint32(val), nil
	default:
		return 0, newErr(Value, "CodeAt target must be an Instruction or Expr", c.Obj)
	}
}

func (c CodeAt) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, c, func() ([]byte, error) {
		addr, err := c.AddrFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeMemAddr(addr, asSrc)
	})
}

func (c CodeAt) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, c, func() error {
		addr, err := c.AddrFor(lay)
		if err != nil {
			return err
		}
		if !lay.IsCode(addr) {
			return newErr(Addr, "CodeAt outside of code region", addr)
		}
		return nil
	})
}

func (c CodeAt) ReprFor(lay *Layout) string {
	return guardRepr(lay, c, "CodeAt", func() string {
		addr, err := c.AddrFor(lay)
		if err != nil {
			return fmt.Sprintf("rom[?:<%v>]", c.Obj)
		}
		return fmt.Sprintf("rom[0x%x:<%v>]", addr, c.Obj)
	})
}

func (c CodeAt) Equal(other Operand) bool {
	o, ok := other.(CodeAt)
	if !ok {
		return false
	}
	oa, aok := c.Obj.(Operand)
	ob, bok := o.Obj.(Operand)
	if aok && bok {
		return oa.Equal(ob)
	}
	return c.Obj == o.Obj
}

func (c CodeAt) ResultFor(lay *Layout) (int64, error) {
	addr, err := c.AddrFor(lay)
	return int64(addr), err
}
