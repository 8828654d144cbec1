// Completion: 100% - Mov instruction complete
package bajo

// Mov computes t = a, a plain copy.
type Mov struct{ taInst }

// NewMov constructs t = a.
func NewMov(t Tgt, a Src) *Mov { return &Mov{newTA(opMov, t, a)} }
