// Completion: 100% - Error taxonomy complete
package bajo

import (
	"fmt"
	"strings"
)

// errors.go generalizes the teacher's leveled CompilerError into the flat,
// discriminated error kind spec section 7 calls for: builds never retry
// internally, so one error type with a Kind tag is enough - no severity
// levels or source locations are needed since there is no source text,
// only an operand/instruction graph.

// ErrorKind discriminates why a build or encode failed.
type ErrorKind int

const (
	// MissingDef: a label or instruction reference cannot be resolved in
	// the current layout.
	MissingDef ErrorKind = iota
	// DuplicateDef: the same instruction or label object appears twice in
	// the code sequence.
	DuplicateDef
	// DetachedLabel: the sequence ends with a label not followed by an
	// instruction.
	DetachedLabel
	// Build: the fixpoint failed to converge within the pass budget.
	Build
	// Addr: an operand resolved outside any valid region, or the final
	// code range overflowed the code region.
	Addr
	// Cycle: a re-entrant EncodeFor found a self-referential expression.
	Cycle
	// Directive: a malformed directive, e.g. Align(0).
	Directive
	// Value: an operand value is out of its permitted range.
	Value
)

func (k ErrorKind) String() string {
	switch k {
	case MissingDef:
		return "missing-def"
	case DuplicateDef:
		return "duplicate-def"
	case DetachedLabel:
		return "detached-label"
	case Build:
		return "build"
	case Addr:
		return "addr"
	case Cycle:
		return "cycle"
	case Directive:
		return "directive"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// Error is the single error type every assembler failure surfaces as.
type Error struct {
	Kind ErrorKind
	Msg  string
	Args []any
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Msg, strings.Join(parts, ", "))
}

// Is lets errors.Is match on kind alone, e.g.:
//
//	errors.Is(err, &bajo.Error{Kind: bajo.Addr})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, msg string, args ...any) *Error {
	return &Error{Kind: kind, Msg: msg, Args: args}
}

// KindOf reports the ErrorKind of err, and whether err was one of ours.
func KindOf(err error) (ErrorKind, bool) {
	e, ok := err.(*Error)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}
