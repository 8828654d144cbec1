// Completion: 100% - Label complete
package bajo

import (
	"fmt"
	"sync/atomic"
)

// label.go implements Label, an address marker bound during pre-analysis
// to the instruction immediately following it in the flattened code
// sequence (spec section 3.1). A Label's value is that instruction's
// address once the layout converges.
//
// The Python original names anonymous labels from a plain global counter
// (Label._seq); spec section 5 calls that out as a shared resource that
// needs an atomic increment or per-builder scoping under concurrency. This
// port uses sync/atomic on a package-level counter - labels only need to
// be unique within one Script, and an atomic counter trivially guarantees
// that across any number of concurrently-building Scripts too.

var labelSeq int64

// Label is an address marker; it is bound to the next instruction in the
// code sequence during Script's pre-analysis pass.
type Label struct {
	Name string
}

// NewLabel constructs a named label.
func NewLabel(name string) *Label { return &Label{Name: name} }

// AnonLabel constructs an automatically-named label ("_L<n>").
func AnonLabel() *Label {
	n := atomic.AddInt64(&labelSeq, 1)
	return &Label{Name: fmt.Sprintf("_L%d", n)}
}

func (l *Label) MaxSize() int { return maxVarintBytes }

func (l *Label) EncodeFor(lay *Layout, asSrc bool) ([]byte, error) {
	return guardEncode(lay, l, func() ([]byte, error) {
		v, err := l.ResultFor(lay)
		if err != nil {
			return nil, err
		}
		return encodeImmValue(v)
	})
}

func (l *Label) CheckAgainst(lay *Layout) error {
	return guardCheck(lay, l, func() error {
		_, err := l.ResultFor(lay)
		return err
	})
}

func (l *Label) ReprFor(lay *Layout) string {
	return fmt.Sprintf("#%s", l.Name)
}

func (l *Label) Equal(other Operand) bool {
	o, ok := other.(*Label)
	return ok && o == l
}

// ResultFor resolves to the address of the instruction this label marks.
func (l *Label) ResultFor(lay *Layout) (int64, error) {
	addr, err := lay.AddrOfLabel(l)
	if err != nil {
		return 0, err
	}
	return int64(addr), nil
}

func (l *Label) String() string { return l.Name }
