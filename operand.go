// Completion: 100% - Operand model complete
package bajo

// operand.go defines the operand algebra of spec section 4.B: every value
// an instruction can read from or write to - registers, memory, indirect
// memory, code addresses, immediates, and expression trees - implements
// Operand. Some operands additionally resolve to a concrete address
// (Addressable) or a signed intermediate result (Expr); most don't need
// both.
//
// The Python original overloads +, -, ==, etc. on these objects to build
// expression trees instead of computing values. Go has no operator
// overloading, so this port follows spec section 9's design note directly:
// expression construction is explicit (ExprAdd(a, b), NewOffset(base, target), ...)
// rather than hijacked through arithmetic operators, and Equal is the
// structural-comparison entry point operand equality needed for RMW
// detection and user-facing tests (the Python "structurally_equal").

// Operand is the common surface of every value object in spec section 3.1:
// registers, memory references, immediates, and expression trees.
type Operand interface {
	// MaxSize returns an upper bound on the encoded size, independent of
	// any layout - used for the engine's initial pessimistic pass.
	MaxSize() int
	// EncodeFor returns the final byte encoding against a converged
	// layout. asSrc selects the source/target tag bit for memory-shaped
	// operands; operands that don't carry that distinction (immediates,
	// expressions) ignore it.
	EncodeFor(lay *Layout, asSrc bool) ([]byte, error)
	// CheckAgainst validates that every address this operand resolves to
	// lies in a permitted region.
	CheckAgainst(lay *Layout) error
	// ReprFor renders a human-readable form of the operand against a
	// layout, used by Script's disassembly listing.
	ReprFor(lay *Layout) string
	// Equal is structural equality by discriminant and fields - not Go's
	// ==, which for pointer-identity operand types would only ever
	// compare identity.
	Equal(other Operand) bool
}

// Tgt is the subset of Operand legal as an instruction's write target:
// direct or indirect memory, never a bare immediate or expression.
type Tgt = Operand

// Src is the subset of Operand legal as an instruction's read source: any
// operand, including immediates and expressions.
type Src = Operand

// Addressable is implemented by operands that resolve to a concrete
// code/RAM byte address: direct memory, registers, named registers, and
// code-address operands. IMem is not Addressable: its address is only
// known at run time.
type Addressable interface {
	Operand
	AddrFor(lay *Layout) (uint32, error)
}

// Expr is implemented by the expression-tree side of the algebra: it
// evaluates to a signed intermediate value rather than a memory address.
// Labels, SizeOf, Offset, and the binary arithmetic nodes all implement it.
type Expr interface {
	Operand
	ResultFor(lay *Layout) (int64, error)
}

// resolveValue is the Go counterpart of the Python _resolve_imm helper: it
// resolves any operand that can appear as an expression leaf (an
// instruction, an addressable memory operand, an immediate, or a nested
// expression) down to a signed intermediate value.
func resolveValue(a any, lay *Layout) (int64, error) {
	switch v := a.(type) {
	case Imm:
		return int64(v), nil
	case Expr:
		return v.ResultFor(lay)
	case Instruction:
		addr, err := lay.AddrOfInst(v)
		return int64(addr), err
	case Addressable:
		addr, err := v.AddrFor(lay)
		return int64(addr), err
	default:
		return 0, newErr(Value, "operand cannot be resolved to a value", a)
	}
}
