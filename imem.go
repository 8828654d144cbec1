// Completion: 100% - Indirect memory operand complete
package bajo

import "fmt"

// imem.go implements IMem, "contents of memory at address held in ref plus
// offset" (spec section 3.1). ref resolves to an address; offset is any
// operand except another IMem (the spec forbids nested indirection). The
// offset always encodes as a source, regardless of whether the IMem itself
// is used as a target or source.

// IMem is an indirect-memory reference: mem[ref + offset].
type IMem struct {
	Ref    Addressable
	Offset Operand
}

// NewIMem constructs an indirect memory reference. A nil offset defaults
// to Imm(0), matching the Python default argument.
func NewIMem(ref Addressable, offset Operand) IMem {
	if offset == nil {
		offset = Imm(0)
	}
	return IMem{Ref: ref, Offset: offset}
}

func (m IMem) MaxSize() int { return maxVarintBytes + m.Offset.MaxSize() }

func (m IMem) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, m, func() ([]byte, error) {
		addr, err := m.Ref.AddrFor(lay)
		if err != nil {
			return nil, err
		}
		ref, err := encodeMemRef(addr, asSrc)
		if err != nil {
			return nil, err
		}
		off, err := m.Offset.EncodeFor(lay, true)
		if err != nil {
			return nil, err
		}
		return append(ref, off...), nil
	})
}

func (m IMem) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, m, func() error {
		if err := m.Ref.CheckAgainst(lay); err != nil {
			return err
		}
		return m.Offset.CheckAgainst(lay)
	})
}

func (m IMem) ReprFor(lay *Layout) string {
	return guardRepr(lay, m, "IMem", func() string {
		return fmt.Sprintf("mem[%s + %s]", m.Ref.ReprFor(lay), m.Offset.ReprFor(lay))
	})
}

func (m IMem) Equal(other Operand) bool {
	o, ok := other.(IMem)
	return ok && m.Ref.Equal(o.Ref) && m.Offset.Equal(o.Offset)
}
