// Completion: 100% - Opcode table complete
package bajo

// opcodes.go enumerates the fixed wire opcode assigned to every
// instruction mnemonic (spec section 4.D). The numbering matches the
// canonical source of truth exactly, since any VM decoding this module's
// output has this same table baked into its dispatch switch; reordering
// or renumbering it would silently desync every consumer.
const (
	opNop byte = iota
	opAdd
	opSub
	opMul
	opDiv
	opDivU
	opRem
	opRemU
	opAnd
	opOr
	opBitAnd
	opBitOr
	opBitXor
	opInv
	opLShift
	opRShift
	opRShiftU
	opTstEq
	opTstNe
	opTstGt
	opTstGe
	opTstGtU
	opTstGeU
	opJmp
	opJmpLnk
	opBr
	opBrLnk
	opBrEq
	opBrNe
	opBrGt
	opBrGe
	opBrGtU
	opBrGeU
	opMovEq
	opMovGt
	opMovGe
	opMovGtU
	opMovGeU
	opLdB
	opLdH
	opLdBU
	opLdHU
	opStB
	opStH
	opSys
	opExit
	opSys00
	opSys01
	opSys02
	opSys03
	opSys04
	opSys10
	opSys11
	opSys12
	opSys13
	opSys14
	opSys20
	opSys21
	opSys22
	opSys23
	opSys24
	opMov
	opNeg
	opAbs
	opAnd2
	opOr2
	opMax
	opMin
	opNot
	opBool
	opLongMul
	opLongMulU
)

// opcodeNames gives generic ReprFor output a mnemonic without requiring
// each instruction family to carry its own name string.
var opcodeNames = map[byte]string{
	opNop:      "Nop",
	opAdd:      "Add",
	opSub:      "Sub",
	opMul:      "Mul",
	opDiv:      "Div",
	opDivU:     "DivU",
	opRem:      "Rem",
	opRemU:     "RemU",
	opAnd:      "And",
	opOr:       "Or",
	opBitAnd:   "BitAnd",
	opBitOr:    "BitOr",
	opBitXor:   "BitXor",
	opInv:      "Inv",
	opLShift:   "LShift",
	opRShift:   "RShift",
	opRShiftU:  "RShiftU",
	opTstEq:    "TstEq",
	opTstNe:    "TstNe",
	opTstGt:    "TstGt",
	opTstGe:    "TstGe",
	opTstGtU:   "TstGtU",
	opTstGeU:   "TstGeU",
	opJmp:      "Jmp",
	opJmpLnk:   "JmpLnk",
	opBr:       "Br",
	opBrLnk:    "BrLnk",
	opBrEq:     "BrEq",
	opBrNe:     "BrNe",
	opBrGt:     "BrGt",
	opBrGe:     "BrGe",
	opBrGtU:    "BrGtU",
	opBrGeU:    "BrGeU",
	opMovEq:    "MovEq",
	opMovGt:    "MovGt",
	opMovGe:    "MovGe",
	opMovGtU:   "MovGtU",
	opMovGeU:   "MovGeU",
	opLdB:      "LdB",
	opLdH:      "LdH",
	opLdBU:     "LdBU",
	opLdHU:     "LdHU",
	opStB:      "StB",
	opStH:      "StH",
	opSys:      "Sys",
	opExit:     "Exit",
	opSys00:    "Sys00",
	opSys01:    "Sys01",
	opSys02:    "Sys02",
	opSys03:    "Sys03",
	opSys04:    "Sys04",
	opSys10:    "Sys10",
	opSys11:    "Sys11",
	opSys12:    "Sys12",
	opSys13:    "Sys13",
	opSys14:    "Sys14",
	opSys20:    "Sys20",
	opSys21:    "Sys21",
	opSys22:    "Sys22",
	opSys23:    "Sys23",
	opSys24:    "Sys24",
	opMov:      "Mov",
	opNeg:      "Neg",
	opAbs:      "Abs",
	opAnd2:     "And2",
	opOr2:      "Or2",
	opMax:      "Max",
	opMin:      "Min",
	opNot:      "Not",
	opBool:     "Bool",
	opLongMul:  "LongMul",
	opLongMulU: "LongMulU",
}
