// Completion: 100% - Comparison instructions complete
package bajo

// TstEq computes t = (a == b).
type TstEq struct{ tabInst }

// NewTstEq constructs t = (a == b).
func NewTstEq(t Tgt, a, b Src) *TstEq { return &TstEq{newTAB(opTstEq, t, a, b)} }

// TstNe computes t = (a != b).
type TstNe struct{ tabInst }

// NewTstNe constructs t = (a != b).
func NewTstNe(t Tgt, a, b Src) *TstNe { return &TstNe{newTAB(opTstNe, t, a, b)} }

// TstGt computes t = (a > b), signed.
type TstGt struct{ tabInst }

// NewTstGt constructs t = (a > b), signed.
func NewTstGt(t Tgt, a, b Src) *TstGt { return &TstGt{newTAB(opTstGt, t, a, b)} }

// TstGe computes t = (a >= b), signed.
type TstGe struct{ tabInst }

// NewTstGe constructs t = (a >= b), signed.
func NewTstGe(t Tgt, a, b Src) *TstGe { return &TstGe{newTAB(opTstGe, t, a, b)} }

// TstGtU computes t = (a > b), unsigned.
type TstGtU struct{ tabInst }

// NewTstGtU constructs t = (a > b), unsigned.
func NewTstGtU(t Tgt, a, b Src) *TstGtU { return &TstGtU{newTAB(opTstGtU, t, a, b)} }

// TstGeU computes t = (a >= b), unsigned.
type TstGeU struct{ tabInst }

// NewTstGeU constructs t = (a >= b), unsigned.
func NewTstGeU(t Tgt, a, b Src) *TstGeU { return &TstGeU{newTAB(opTstGeU, t, a, b)} }

// The "less than" comparisons have no opcode of their own: a < b is the
// same wire instruction as b > a, so each is expressed as its Gt/Ge
// sibling with the operands swapped, exactly like the "greater than"
// forms they wrap.

// NewTstLt constructs t = (a < b), signed, as TstGt(t, b, a).
func NewTstLt(t Tgt, a, b Src) *TstGt { return NewTstGt(t, b, a) }

// NewTstLe constructs t = (a <= b), signed, as TstGe(t, b, a).
func NewTstLe(t Tgt, a, b Src) *TstGe { return NewTstGe(t, b, a) }

// NewTstLtU constructs t = (a < b), unsigned, as TstGtU(t, b, a).
func NewTstLtU(t Tgt, a, b Src) *TstGtU { return NewTstGtU(t, b, a) }

// NewTstLeU constructs t = (a <= b), unsigned, as TstGeU(t, b, a).
func NewTstLeU(t Tgt, a, b Src) *TstGeU { return NewTstGeU(t, b, a) }
