// Completion: 100% - Or instruction complete
package bajo

// Or computes t = s[0] || ... || s[n-1]: the result is the first truthy
// argument, otherwise 0.
type Or struct{ tVarSrcInst }

// NewOr constructs a short-circuit-free logical OR over one or more
// sources.
func NewOr(t Tgt, first Src, rest ...Src) *Or { return &Or{newTVarSrc(opOr, t, first, rest...)} }
