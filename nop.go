// Completion: 100% - Nop instruction complete
package bajo

// Nop does nothing: no targets, no sources.
type Nop struct{ op }

// NewNop constructs a no-operation instruction.
func NewNop() *Nop { return &Nop{newOp(opNop, opcodeNames[opNop], false, false, nil, nil)} }
