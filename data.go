// Completion: 100% - Data instructions complete
package bajo

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// data.go implements the fixed-data leaf instructions spec section 4.J
// adds on top of the distilled spec.md: Bytes places a literal byte
// string in code, and DataExpr places the resolved value of an
// expression or instruction address as a fixed-width little-endian
// field - the building block jump tables and inline constants need.
// Both are grounded directly on the original's asm.py Bytes/DataExpr.

// Bytes places a literal, already-encoded byte string into the code
// stream verbatim. Its size is fixed and known without a layout.
type Bytes struct {
	val []byte
}

// NewBytes wraps val as a Bytes instruction. The slice is copied so the
// caller may reuse or mutate the original afterward.
func NewBytes(val []byte) *Bytes {
	cp := make([]byte, len(val))
	copy(cp, val)
	return &Bytes{val: cp}
}

// BytesFrom32 encodes val as 4 little-endian bytes, signed if val would
// not fit an unsigned 32-bit field.
func BytesFrom32(val int64) *Bytes {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(val))
	return NewBytes(buf[:])
}

// BytesFrom16 encodes val as 2 little-endian bytes.
func BytesFrom16(val int64) *Bytes {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(val))
	return NewBytes(buf[:])
}

// BytesFrom8 encodes val as a single byte.
func BytesFrom8(val int64) *Bytes {
	return NewBytes([]byte{byte(val)})
}

// BytesFromString encodes val as UTF-8, null-terminated unless nullTerminated
// is false.
func BytesFromString(val string, nullTerminated bool) *Bytes {
	b := []byte(val)
	if nullTerminated {
		b = append(b, 0)
	}
	return NewBytes(b)
}

func (b *Bytes) MaxSize() int { return len(b.val) }

func (b *Bytes) SizeFor(lay *Layout) (int, error) { return len(b.val), nil }

func (b *Bytes) EncodeFor(lay *Layout) ([]byte, error) {
	out := make([]byte, len(b.val))
	copy(out, b.val)
	return out, nil
}

func (b *Bytes) CheckAgainst(lay *Layout) error { return nil }

func (b *Bytes) ReprFor(lay *Layout) string {
	return fmt.Sprintf("Bytes(%s)", hex.EncodeToString(b.val))
}

// DataExpr places the resolved value of an instruction's address or an
// expression into code as a fixed-width little-endian field, e.g.
// NewDataExpr(NewOffset(...), 4) for a jump-table entry, or
// NewDataExpr(label, 4) for a label's address.
type DataExpr struct {
	obj  any // Instruction or Expr
	size int
}

// NewDataExpr constructs a fixed-width data field over obj (an
// Instruction, whose address is placed, or an Expr, whose result is
// placed), sized in bytes.
func NewDataExpr(obj any, size int) *DataExpr {
	return &DataExpr{obj: obj, size: size}
}

func (d *DataExpr) MaxSize() int { return d.size }

func (d *DataExpr) SizeFor(lay *Layout) (int, error) { return d.size, nil }

func (d *DataExpr) resultFor(lay *Layout) (int64, error) {
	if inst, ok := d.obj.(Instruction); ok {
		addr, err := lay.AddrOfInst(inst)
		return int64(addr), err
	}
	if e, ok := d.obj.(Expr); ok {
		return e.ResultFor(lay)
	}
	return 0, newErr(Value, "DataExpr operand must be an instruction or expression", d.obj)
}

func (d *DataExpr) EncodeFor(lay *Layout) ([]byte, error) {
	return guardEncode(lay, d, func() ([]byte, error) {
		v, err := d.resultFor(lay)
		if err != nil {
			return nil, err
		}
		if d.size <= 0 || d.size > 8 {
			return nil, newErr(Value, "unsupported DataExpr width", d.size)
		}
		buf := make([]byte, d.size)
		u := uint64(v)
		for i := 0; i < d.size; i++ {
			buf[i] = byte(u)
			u >>= 8
		}
		return buf, nil
	})
}

func (d *DataExpr) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, d, func() error {
		if op, ok := d.obj.(Operand); ok {
			return op.CheckAgainst(lay)
		}
		return nil
	})
}

func (d *DataExpr) ReprFor(lay *Layout) string {
	return guardRepr(lay, d, "DataExpr", func() string {
		v, err := d.resultFor(lay)
		if err != nil {
			return fmt.Sprintf("@%v", d.obj)
		}
		return fmt.Sprintf("@%d", v)
	})
}
