// Completion: 100% - Jmp/JmpLnk instructions complete
package bajo

import "fmt"

// Jmp sets pc = addr, an absolute jump. Unlike the Br family it carries
// its target unmodified - callers wanting position-independent code
// should prefer Br, which wraps the target in a PC-relative Offset.
type Jmp struct{ op }

// NewJmp constructs pc = addr.
func NewJmp(addr Src) *Jmp { return &Jmp{newOp(opJmp, opcodeNames[opJmp], false, false, nil, []Src{addr})} }

func (j *Jmp) ReprFor(lay *Layout) string {
	return j.op.ReprFor(lay) + fmt.Sprintf(":<%v>", j.srcs[0])
}

// JmpLnk sets lr = pc, pc = addr: an absolute call.
type JmpLnk struct{ op }

// NewJmpLnk constructs lr = pc, pc = addr.
func NewJmpLnk(lr Tgt, addr Src) *JmpLnk {
	return &JmpLnk{newOp(opJmpLnk, opcodeNames[opJmpLnk], false, false, []Tgt{lr}, []Src{addr})}
}

func (j *JmpLnk) ReprFor(lay *Layout) string {
	return j.op.ReprFor(lay) + fmt.Sprintf(":<%v>", j.srcs[0])
}
