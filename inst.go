// Completion: 100% - Instruction model complete
package bajo

import (
	"bytes"
	"fmt"
	"strings"
)

// inst.go implements the common instruction interface and its shared base
// struct (spec section 4.C): max size, size-given-layout, final encoding
// with RMW opcode compression, and operand self-check. Every concrete
// instruction family (add.go, call.go, syscall.go, ...) embeds op and only
// supplies its opcode, arity flags, and operand slots.

// Instruction is the common surface of every opcode: arithmetic, branch,
// call, load/store, conditional move, and host-call variants alike.
type Instruction interface {
	// MaxSize returns an upper bound independent of layout, used for the
	// engine's initial pessimistic pass.
	MaxSize() int
	// SizeFor returns the length of this instruction's encoding under a
	// given layout.
	SizeFor(lay *Layout) (int, error)
	// EncodeFor returns the final byte image.
	EncodeFor(lay *Layout) ([]byte, error)
	// CheckAgainst validates that all addresses this instruction's
	// operands resolve to lie in a permitted region.
	CheckAgainst(lay *Layout) error
	// ReprFor renders a human-readable mnemonic against a layout.
	ReprFor(lay *Layout) string
}

// op is the shared base every concrete instruction embeds. It holds the
// opcode, the variable-arity flags, and the target/source operand tuples,
// and implements everything spec section 4.C describes generically: RMW
// compression is opcode-agnostic, so one implementation covers every
// instruction family.
type op struct {
	opcode   byte
	name     string
	isVarTgt bool
	isVarSrc bool
	tgts     []Tgt
	srcs     []Src
}

func newOp(opcode byte, name string, isVarTgt, isVarSrc bool, tgts []Tgt, srcs []Src) op {
	if opcode&0x80 != 0 {
		panic(fmt.Sprintf("opcode %s: high bit 0x80 is reserved for RMW compression", name))
	}
	return op{opcode: opcode, name: name, isVarTgt: isVarTgt, isVarSrc: isVarSrc, tgts: tgts, srcs: srcs}
}

func (o *op) MaxSize() int {
	size := 1
	if o.isVarTgt {
		size += maxVarintBytes
	}
	for _, t := range o.tgts {
		size += t.MaxSize()
	}
	if o.isVarSrc {
		size += maxVarintBytes
	}
	for _, s := range o.srcs {
		size += s.MaxSize()
	}
	return size
}

func (o *op) SizeFor(lay *Layout) (int, error) {
	b, err := o.EncodeFor(lay)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// EncodeFor emits the opcode byte (with the RMW bit set when the first
// source's encoding, as a source, byte-matches the first target's), the
// optional target-count varint, each target (as a target), the optional
// source-count varint (always the true count, RMW or not - the VM
// recovers the elided operand from the opcode bit), and the remaining
// sources (as sources).
func (o *op) EncodeFor(lay *Layout) ([]byte, error) {
	return guardEncode(lay, o, func() ([]byte, error) {
		isRMW := false
		if len(o.srcs) > 0 && len(o.tgts) > 0 {
			srcEnc, err := o.srcs[0].EncodeFor(lay, true)
			if err != nil {
				return nil, err
			}
			tgtEnc, err := o.tgts[0].EncodeFor(lay, true)
			if err != nil {
				return nil, err
			}
			isRMW = bytes.Equal(srcEnc, tgtEnc)
		}

		mop := o.opcode
		if isRMW {
			mop |= 0x80
		}

		var buf bytes.Buffer
		buf.WriteByte(mop)

		if o.isVarTgt {
			b, err := encodeImmValue(int64(len(o.tgts)))
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		for _, t := range o.tgts {
			b, err := t.EncodeFor(lay, false)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}

		if o.isVarSrc {
			b, err := encodeImmValue(int64(len(o.srcs)))
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}

		srcs := o.srcs
		if isRMW {
			srcs = srcs[1:]
		}
		for _, s := range srcs {
			b, err := s.EncodeFor(lay, true)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}

		return buf.Bytes(), nil
	})
}

func (o *op) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, o, func() error {
		for _, t := range o.tgts {
			if err := t.CheckAgainst(lay); err != nil {
				return err
			}
		}
		for _, s := range o.srcs {
			if err := s.CheckAgainst(lay); err != nil {
				return err
			}
		}
		return nil
	})
}

func (o *op) ReprFor(lay *Layout) string {
	return guardRepr(lay, o, o.name, func() string {
		var parts []string
		if o.isVarTgt {
			parts = append(parts, "("+joinRepr(o.tgts, lay)+")")
		} else {
			for _, t := range o.tgts {
				parts = append(parts, t.ReprFor(lay))
			}
		}
		if o.isVarSrc {
			parts = append(parts, "("+joinRepr(o.srcs, lay)+")")
		} else {
			for _, s := range o.srcs {
				parts = append(parts, s.ReprFor(lay))
			}
		}
		return fmt.Sprintf("%s %s", o.name, strings.Join(parts, ", "))
	})
}

func joinRepr(operands []Operand, lay *Layout) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = op.ReprFor(lay)
	}
	return strings.Join(parts, ", ")
}

// Raw integers are not auto-boxed into operands in this port: callers
// pass Imm(5) explicitly rather than a raw int, matching the rest of the
// operand model's explicit style.
