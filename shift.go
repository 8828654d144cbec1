// Completion: 100% - Shift instructions complete
package bajo

// LShift computes t = a << b. b is limited to 32 by the host VM.
type LShift struct{ tabInst }

// NewLShift constructs t = a << b.
func NewLShift(t Tgt, a, b Src) *LShift { return &LShift{newTAB(opLShift, t, a, b)} }

// RShift computes t = a >> b, an arithmetic (sign-extending) shift.
// b is limited to 31 by the host VM.
type RShift struct{ tabInst }

// NewRShift constructs t = a >> b (signed).
func NewRShift(t Tgt, a, b Src) *RShift { return &RShift{newTAB(opRShift, t, a, b)} }

// RShiftU computes t = a >> b, a logical (zero-filling) shift.
// b is limited to 32 by the host VM.
type RShiftU struct{ tabInst }

// NewRShiftU constructs t = a >> b (unsigned).
func NewRShiftU(t Tgt, a, b Src) *RShiftU { return &RShiftU{newTAB(opRShiftU, t, a, b)} }
