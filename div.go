// Completion: 100% - Div/DivU instructions complete
package bajo

// Div computes t = a / b, truncating signed division.
type Div struct{ tabInst }

// NewDiv constructs t = a / b (signed, truncating).
func NewDiv(t Tgt, a, b Src) *Div { return &Div{newTAB(opDiv, t, a, b)} }

// DivU computes t = a / b, truncating unsigned division.
type DivU struct{ tabInst }

// NewDivU constructs t = a / b (unsigned, truncating).
func NewDivU(t Tgt, a, b Src) *DivU { return &DivU{newTAB(opDivU, t, a, b)} }
