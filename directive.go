// Completion: 100% - Directives complete
package bajo

// directive.go implements the two zero-size directives of spec section
// 3.1: Align(n), which forces the next instruction's address to a multiple
// of n, and NoPad, which marks the next instruction ineligible for the
// oscillation-breaker's alignment injection (Phase 3).

// DirectiveItem is implemented by Align and NoPad.
type DirectiveItem interface {
	isDirective()
}

// Align forces the next instruction's address to address mod n == 0.
type Align struct {
	N int
}

// NewAlign constructs an Align directive, rejecting Align(0) up front
// with a Directive-kind error.
func NewAlign(n int) (Align, error) {
	if n < 1 {
		return Align{}, newErr(Directive, "align modulus must be > 0", n)
	}
	return Align{N: n}, nil
}

func (Align) isDirective() {}

// NoPad marks the next instruction ineligible to be relocated by the
// oscillation-breaker.
type NoPad struct{}

func (NoPad) isDirective() {}
