// Completion: 100% - Neg/Abs instructions complete
package bajo

// Neg computes t = -a.
type Neg struct{ taInst }

// NewNeg constructs t = -a.
func NewNeg(t Tgt, a Src) *Neg { return &Neg{newTA(opNeg, t, a)} }

// Abs computes t = abs(a).
type Abs struct{ taInst }

// NewAbs constructs t = abs(a).
func NewAbs(t Tgt, a Src) *Abs { return &Abs{newTA(opAbs, t, a)} }
