// Completion: 100% - Add instruction complete
package bajo

// Add computes t = a + b.
type Add struct{ tabInst }

// NewAdd constructs t = a + b.
func NewAdd(t Tgt, a, b Src) *Add { return &Add{newTAB(opAdd, t, a, b)} }
