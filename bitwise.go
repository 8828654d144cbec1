// Completion: 100% - Bitwise and logical two/n-ary instructions complete
package bajo

// BitAnd computes t = a & b.
type BitAnd struct{ tabInst }

// NewBitAnd constructs t = a & b.
func NewBitAnd(t Tgt, a, b Src) *BitAnd { return &BitAnd{newTAB(opBitAnd, t, a, b)} }

// BitOr computes t = a | b.
type BitOr struct{ tabInst }

// NewBitOr constructs t = a | b.
func NewBitOr(t Tgt, a, b Src) *BitOr { return &BitOr{newTAB(opBitOr, t, a, b)} }

// BitXor computes t = a ^ b.
type BitXor struct{ tabInst }

// NewBitXor constructs t = a ^ b.
func NewBitXor(t Tgt, a, b Src) *BitXor { return &BitXor{newTAB(opBitXor, t, a, b)} }

// Inv computes t = ~a, a bitwise complement.
type Inv struct{ taInst }

// NewInv constructs t = ~a.
func NewInv(t Tgt, a Src) *Inv { return &Inv{newTA(opInv, t, a)} }

// Not computes t = !a, a logical complement (0 or 1).
type Not struct{ taInst }

// NewNot constructs t = !a.
func NewNot(t Tgt, a Src) *Not { return &Not{newTA(opNot, t, a)} }

// Bool computes t = !!a, coercing a to 0 or 1.
type Bool struct{ taInst }

// NewBool constructs t = !!a.
func NewBool(t Tgt, a Src) *Bool { return &Bool{newTA(opBool, t, a)} }

// And2 computes t = a && b: the result is b if both are truthy, else 0.
type And2 struct{ tabInst }

// NewAnd2 constructs the two-operand form of And.
func NewAnd2(t Tgt, a, b Src) *And2 { return &And2{newTAB(opAnd2, t, a, b)} }

// Or2 computes t = a || b: the result is a if truthy, else b.
type Or2 struct{ tabInst }

// NewOr2 constructs the two-operand form of Or.
func NewOr2(t Tgt, a, b Src) *Or2 { return &Or2{newTAB(opOr2, t, a, b)} }

// Max computes t = max(s[0], ..., s[n-1]).
type Max struct{ tVarSrcInst }

// NewMax constructs t = max over one or more sources.
func NewMax(t Tgt, first Src, rest ...Src) *Max { return &Max{newTVarSrc(opMax, t, first, rest...)} }

// Min computes t = min(s[0], ..., s[n-1]).
type Min struct{ tVarSrcInst }

// NewMin constructs t = min over one or more sources.
func NewMin(t Tgt, first Src, rest ...Src) *Min { return &Min{newTVarSrc(opMin, t, first, rest...)} }
