// Completion: 100% - And instruction complete
package bajo

// And computes t = s[0] && ... && s[n-1]: the result is the last argument
// if every argument is truthy, otherwise 0.
type And struct{ tVarSrcInst }

// NewAnd constructs a short-circuit-free logical AND over one or more
// sources.
func NewAnd(t Tgt, first Src, rest ...Src) *And { return &And{newTVarSrc(opAnd, t, first, rest...)} }
