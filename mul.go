// Completion: 100% - Mul instruction complete
package bajo

// Mul computes t = a * b (low 32 bits of the product).
type Mul struct{ tabInst }

// NewMul constructs t = a * b.
func NewMul(t Tgt, a, b Src) *Mul { return &Mul{newTAB(opMul, t, a, b)} }
