// Completion: 100% - Conditional move instructions complete
package bajo

// MovEq computes t = (a == b) ? x : y.
type MovEq struct{ moveIfInst }

// NewMovEq constructs t = (a == b) ? x : y.
func NewMovEq(t Tgt, a, b, x, y Src) *MovEq { return &MovEq{*newMoveIf(opMovEq, t, a, b, x, y)} }

// MovGt computes t = (a > b) ? x : y, signed.
type MovGt struct{ moveIfInst }

// NewMovGt constructs t = (a > b) ? x : y, signed.
func NewMovGt(t Tgt, a, b, x, y Src) *MovGt { return &MovGt{*newMoveIf(opMovGt, t, a, b, x, y)} }

// MovGe computes t = (a >= b) ? x : y, signed.
type MovGe struct{ moveIfInst }

// NewMovGe constructs t = (a >= b) ? x : y, signed.
func NewMovGe(t Tgt, a, b, x, y Src) *MovGe { return &MovGe{*newMoveIf(opMovGe, t, a, b, x, y)} }

// MovGtU computes t = (a > b) ? x : y, unsigned.
type MovGtU struct{ moveIfInst }

// NewMovGtU constructs t = (a > b) ? x : y, unsigned.
func NewMovGtU(t Tgt, a, b, x, y Src) *MovGtU { return &MovGtU{*newMoveIf(opMovGtU, t, a, b, x, y)} }

// MovGeU computes t = (a >= b) ? x : y, unsigned.
type MovGeU struct{ moveIfInst }

// NewMovGeU constructs t = (a >= b) ? x : y, unsigned.
func NewMovGeU(t Tgt, a, b, x, y Src) *MovGeU { return &MovGeU{*newMoveIf(opMovGeU, t, a, b, x, y)} }

// The remaining conditions reuse one of the five opcodes above with
// operands swapped, exactly like the Tst and Br families.

// NewMovNe constructs t = (a != b) ? x : y, as MovEq with x/y swapped.
func NewMovNe(t Tgt, a, b, x, y Src) *MovEq { return NewMovEq(t, a, b, y, x) }

// NewMovLt constructs t = (a < b) ? x : y, signed, as MovGt with a/b swapped.
func NewMovLt(t Tgt, a, b, x, y Src) *MovGt { return NewMovGt(t, b, a, x, y) }

// NewMovLe constructs t = (a <= b) ? x : y, signed, as MovGe with a/b swapped.
func NewMovLe(t Tgt, a, b, x, y Src) *MovGe { return NewMovGe(t, b, a, x, y) }

// NewMovLtU constructs t = (a < b) ? x : y, unsigned, as MovGtU with a/b swapped.
func NewMovLtU(t Tgt, a, b, x, y Src) *MovGtU { return NewMovGtU(t, b, a, x, y) }

// NewMovLeU constructs t = (a <= b) ? x : y, unsigned, as MovGeU with a/b swapped.
func NewMovLeU(t Tgt, a, b, x, y Src) *MovGeU { return NewMovGeU(t, b, a, x, y) }
