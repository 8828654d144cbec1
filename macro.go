// Completion: 100% - Pack macro complete
package bajo

// macro.go implements Pack, the one macro spec section 4.I keeps in
// scope from the original's macro.py: it flattens a code sub-sequence
// and inserts a NoPad directive before every instruction in it, so the
// oscillation-breaker (layout.go's buildLayout) can never pick one of
// them to relocate. Callers reach for this when they've hand-packed a
// jump table or a run of Bytes/DataExpr entries that must stay
// contiguous once the layout converges - the rest of macro.py (when,
// case, Subroutine) is higher-level control-flow synthesis that spec.md's
// Non-goals exclude.

// Pack flattens code and returns it with a NoPad directive spliced in
// front of every instruction it contains.
func Pack(code ...Code) Code {
	flat := flattenCode(code)
	out := make([]any, 0, len(flat)*2)
	for _, item := range flat {
		if _, ok := item.(Instruction); ok {
			out = append(out, NoPad{})
		}
		out = append(out, item)
	}
	return out
}
