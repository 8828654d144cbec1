// Completion: 100% - Rem/RemU instructions complete
package bajo

// Rem computes t = a % b, the remainder of truncating signed division.
type Rem struct{ tabInst }

// NewRem constructs t = a % b (signed).
func NewRem(t Tgt, a, b Src) *Rem { return &Rem{newTAB(opRem, t, a, b)} }

// RemU computes t = a % b, the remainder of truncating unsigned division.
type RemU struct{ tabInst }

// NewRemU constructs t = a % b (unsigned).
func NewRemU(t Tgt, a, b Src) *RemU { return &RemU{newTAB(opRemU, t, a, b)} }
