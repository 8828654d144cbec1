// Completion: 100% - Direct memory operands complete
package bajo

import "fmt"

// mem.go implements the direct-memory operand family of spec section 4.B:
// MemAddr (an arbitrary byte address), Reg (a register, i.e. memory at
// n*4 restricted to RAM), and NamedReg (a register resolved by name
// through the environment at layout time). All three encode identically -
// via the tagged direct-memory varint scheme - and differ only in how
// their address is produced and checked.

// MemAddr is memory at a fixed byte address, not necessarily word-aligned.
type MemAddr struct {
	Addr uint32
}

// M constructs a MemAddr, mirroring the original's subscript-style operand
// factories (asm.py's MemFactory.__getitem__) as a plain constructor.
func M(addr uint32) MemAddr { return MemAddr{Addr: addr} }

func (a MemAddr) MaxSize() int { return maxVarintBytes }

func (a MemAddr) AddrFor(lay *Layout) (uint32, error) { return a.Addr, nil }

func (a MemAddr) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, a, func() ([]byte, error) {
		return encodeMemAddr(a.Addr, asSrc)
	})
}

func (a MemAddr) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, a, func() error {
		if !lay.IsCode(a.Addr) && !lay.IsRAM(a.Addr) {
			return newErr(Addr, "address outside of any region", a.Addr)
		}
		return nil
	})
}

func (a MemAddr) ReprFor(lay *Layout) string {
	if lay.IsCode(a.Addr) {
		return fmt.Sprintf("rom[%d]", a.Addr)
	}
	return fmt.Sprintf("ram[%d]", a.Addr)
}

func (a MemAddr) Equal(other Operand) bool {
	o, ok := other.(MemAddr)
	return ok && o.Addr == a.Addr
}

// ResultFor lets a bare MemAddr act as an expression leaf (its own address,
// e.g. when passed where a Label or Offset target is expected).
func (a MemAddr) ResultFor(lay *Layout) (int64, error) { return int64(a.Addr), nil }

// Reg is a register: memory at byte address n*4, checked against the RAM
// region rather than "any region" since registers are never code.
type Reg struct {
	MemAddr
	N uint32
}

// R constructs the register with index n.
func R(n uint32) Reg {
	return Reg{MemAddr: MemAddr{Addr: n * 4}, N: n}
}

func (r Reg) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, r, func() error {
		if !lay.IsRAM(r.Addr) {
			return newErr(Addr, "register outside of ram region", r.N)
		}
		return nil
	})
}

func (r Reg) ReprFor(lay *Layout) string { return fmt.Sprintf("r%d", r.N) }

func (r Reg) Equal(other Operand) bool {
	o, ok := other.(Reg)
	return ok && o.N == r.N
}

func (r Reg) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, r, func() ([]byte, error) {
		return encodeMemAddr(r.Addr, asSrc)
	})
}

func (r Reg) ResultFor(lay *Layout) (int64, error) { return int64(r.Addr), nil }

// NamedReg is a register resolved by name through the layout's
// Environment, rather than by a literal index known at construction time.
type NamedReg struct {
	Name string
}

// RN constructs a register referenced by its environment-assigned name.
func RN(name string) NamedReg { return NamedReg{Name: name} }

func (n NamedReg) MaxSize() int { return maxVarintBytes }

func (n NamedReg) AddrFor(lay *Layout) (uint32, error) {
	idx, err := lay.NamedRegister(n.Name)
	if err != nil {
		return 0, err
	}
	return idx * 4, nil
}

func (n NamedReg) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, n, func() ([]byte, error) {
		addr, err := n.AddrFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeMemAddr(addr, asSrc)
	})
}

func (n NamedReg) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, n, func() error {
		addr, err := n.AddrFor(lay)
		if err != nil {
			return err
		}
		if !lay.IsRAM(addr) {
			return newErr(Addr, "named register outside of ram region", n.Name)
		}
		return nil
	})
}

func (n NamedReg) ReprFor(lay *Layout) string {
	idx, err := lay.NamedRegister(n.Name)
	if err != nil {
		return fmt.Sprintf("r['%s']", n.Name)
	}
	return fmt.Sprintf("r%d", idx)
}

func (n NamedReg) Equal(other Operand) bool {
	o, ok := other.(NamedReg)
	return ok && o.Name == n.Name
}

func (n NamedReg) ResultFor(lay *Layout) (int64, error) {
	addr, err := n.AddrFor(lay)
	return int64(addr), err
}
