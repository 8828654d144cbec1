// Completion: 100% - Sub instruction complete
package bajo

// Sub computes t = a - b.
type Sub struct{ tabInst }

// NewSub constructs t = a - b.
func NewSub(t Tgt, a, b Src) *Sub { return &Sub{newTAB(opSub, t, a, b)} }
