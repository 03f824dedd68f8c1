package decoder

import (
	"fmt"

	"github.com/apparentlymart/riscv-decode/insts"
)

// rvcRegOffset is added to every 3-bit compressed register field: those
// fields can only name x8 through x15.
const rvcRegOffset = 8

func compactRegister(word uint32, lowBit uint) insts.Register {
	return insts.Register(Extract(word, lowBit, 3, 0) + rvcRegOffset)
}

// The full-width rs2 field of the CR and CSS formats is at 6..2 rather than
// 24..20.
func crs2(word uint32) insts.Register {
	return insts.Register(Extract(word, 2, 5, 0))
}

// inst[12|6:2] => imm[5|4:0]
func cImmediate(word uint32) int32 {
	return int32(Extract(word, 2, 5, 0)) | ExtractSigned(word, 12, 1, 5)
}

// inst[12|6:2] => uimm[5|4:0]
func cUimmediate(word uint32) uint32 {
	return Extract(word, 2, 5, 0) | Extract(word, 12, 1, 5)
}

// inst[12:2] => imm[11|4|9:8|10|6|7|3:1|5]
func cjImmediate(word uint32) int32 {
	return int32(Extract(word, 3, 3, 1)|
		Extract(word, 11, 1, 4)|
		Extract(word, 2, 1, 5)|
		Extract(word, 7, 1, 6)|
		Extract(word, 6, 1, 7)|
		Extract(word, 9, 2, 8)|
		Extract(word, 8, 1, 10)) |
		ExtractSigned(word, 12, 1, 11)
}

// inst[12:10|6:2] => imm[8|4:3|7:6|2:1|5]
func cbImmediate(word uint32) int32 {
	return int32(Extract(word, 3, 2, 1)|
		Extract(word, 10, 2, 3)|
		Extract(word, 2, 1, 5)|
		Extract(word, 5, 2, 6)) |
		ExtractSigned(word, 12, 1, 8)
}

// inst[12:10|6|5] => uimm[5:3|2|6]
func clwUimmediate(word uint32) uint32 {
	return Extract(word, 6, 1, 2) | Extract(word, 10, 3, 3) | Extract(word, 5, 1, 6)
}

// inst[12:10|6:5] => uimm[5:3|7:6]
func cldUimmediate(word uint32) uint32 {
	return Extract(word, 10, 3, 3) | Extract(word, 5, 2, 6)
}

// inst[12|6:4|3:2] => uimm[5|4:2|7:6]
func clwspUimmediate(word uint32) uint32 {
	return Extract(word, 4, 3, 2) | Extract(word, 12, 1, 5) | Extract(word, 2, 2, 6)
}

// inst[12|6:5|4:2] => uimm[5|4:3|8:6]
func cldspUimmediate(word uint32) uint32 {
	return Extract(word, 5, 2, 3) | Extract(word, 12, 1, 5) | Extract(word, 2, 3, 6)
}

// inst[12:9|8:7] => uimm[5:2|7:6]
func cswspUimmediate(word uint32) uint32 {
	return Extract(word, 9, 4, 2) | Extract(word, 7, 2, 6)
}

// inst[12:10|9:7] => uimm[5:3|8:6]
func csdspUimmediate(word uint32) uint32 {
	return Extract(word, 10, 3, 3) | Extract(word, 7, 3, 6)
}

// inst[12|6|5|4:3|2] => nzimm[9|4|6|8:7|5]
func caddi16spImmediate(word uint32) int32 {
	return int32(Extract(word, 6, 1, 4)|
		Extract(word, 2, 1, 5)|
		Extract(word, 5, 1, 6)|
		Extract(word, 3, 2, 7)) |
		ExtractSigned(word, 12, 1, 9)
}

// inst[12:11|10:7|6|5] => nzuimm[5:4|9:6|2|3]
func caddi4spnImmediate(word uint32) uint32 {
	return Extract(word, 6, 1, 2) |
		Extract(word, 5, 1, 3) |
		Extract(word, 11, 2, 4) |
		Extract(word, 7, 4, 6)
}

// hint is the result for a HINT encoding: a no-op from Version1 on, and
// illegal before that.
func hint(cfg *Config) (insts.Instruction, bool) {
	if cfg.hintsDefined() {
		return insts.Nop(), true
	}
	return 0, false
}

// Quadrant 0

func caddi4spn(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	nzuimm := caddi4spnImmediate(word)
	if nzuimm == 0 {
		// reserved
		return 0, false
	}
	return insts.NewItype(insts.OpADDI, compactRegister(word, 2), insts.SP, int32(nzuimm)), true
}

func clw(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewItype(insts.OpLW, compactRegister(word, 2), compactRegister(word, 7), int32(clwUimmediate(word))), true
}

func cld(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return 0, false
	}
	return insts.NewItype(insts.OpLD, compactRegister(word, 2), compactRegister(word, 7), int32(cldUimmediate(word))), true
}

func csw(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewStype(insts.OpSW, int32(clwUimmediate(word)), compactRegister(word, 7), compactRegister(word, 2)), true
}

func csd(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return 0, false
	}
	return insts.NewStype(insts.OpSD, int32(cldUimmediate(word)), compactRegister(word, 7), compactRegister(word, 2)), true
}

// Quadrant 1

// caddi covers both C.NOP and C.ADDI. Only rd!=0 with a non-zero immediate
// is a real addition; every other code point is a HINT.
func caddi(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r, imm := rd(word), cImmediate(word)
	if r == insts.Zero || imm == 0 {
		return hint(cfg)
	}
	return insts.NewItype(insts.OpADDI, r, r, imm), true
}

// cjalAddiw shares one encoding between C.JAL on RV32 and C.ADDIW on wider
// targets.
func cjalAddiw(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return insts.NewUtype(insts.OpJAL, insts.RA, cjImmediate(word)), true
	}
	r := rd(word)
	if r == insts.Zero {
		// reserved
		return 0, false
	}
	return insts.NewItype(insts.OpADDIW, r, r, cImmediate(word)), true
}

func cli(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r := rd(word)
	if r == insts.Zero {
		return hint(cfg)
	}
	return insts.NewItype(insts.OpADDI, r, insts.Zero, cImmediate(word)), true
}

func caddi16sp(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	nzimm := caddi16spImmediate(word)
	if nzimm == 0 {
		// reserved
		return 0, false
	}
	return insts.NewItype(insts.OpADDI, insts.SP, insts.SP, nzimm), true
}

// clui must sit after caddi16sp in the table: rd=2 belongs to C.ADDI16SP
// and never reaches here.
func clui(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	imm := cImmediate(word) << 12
	if imm == 0 {
		// reserved
		return 0, false
	}
	switch r := rd(word); r {
	case insts.Zero:
		return hint(cfg)
	case insts.SP:
		panic(fmt.Sprintf("c.lui builder reached with rd=sp (%#04x); c.addi16sp must precede c.lui", word))
	default:
		return insts.NewUtype(insts.OpLUI, r, imm), true
	}
}

func csrli(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r := compactRegister(word, 7)
	return insts.NewItype(insts.OpSRLI, r, r, int32(cUimmediate(word)&uint32(cfg.ShiftMask()))), true
}

func csrai(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r := compactRegister(word, 7)
	return insts.NewItype(insts.OpSRAI, r, r, int32(cUimmediate(word)&uint32(cfg.ShiftMask()))), true
}

func candi(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	r := compactRegister(word, 7)
	return insts.NewItype(insts.OpANDI, r, r, cImmediate(word)), true
}

// caluBuilder is for the CA format: rd' is both destination and first
// source.
func caluBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	r := compactRegister(word, 7)
	return insts.NewRtype(op, r, r, compactRegister(word, 2)), true
}

func cj(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewUtype(insts.OpJAL, insts.Zero, cjImmediate(word)), true
}

// cbranchBuilder compares rs1' against x0.
func cbranchBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewStype(op, cbImmediate(word), compactRegister(word, 7), insts.Zero), true
}

// Quadrant 2

func cslli(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r, uimm := rd(word), cUimmediate(word)
	if r == insts.Zero || uimm == 0 {
		return hint(cfg)
	}
	return insts.NewItype(insts.OpSLLI, r, r, int32(uimm&uint32(cfg.ShiftMask()))), true
}

func clwsp(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	r := rd(word)
	if r == insts.Zero {
		// reserved
		return 0, false
	}
	return insts.NewItype(insts.OpLW, r, insts.SP, int32(clwspUimmediate(word))), true
}

func cldsp(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return 0, false
	}
	r := rd(word)
	if r == insts.Zero {
		// reserved
		return 0, false
	}
	return insts.NewItype(insts.OpLD, r, insts.SP, int32(cldspUimmediate(word))), true
}

// cjrMv covers C.JR (rs2=0) and C.MV (rs2!=0).
func cjrMv(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r, src := rd(word), crs2(word)
	switch {
	case src == insts.Zero && r == insts.Zero:
		// reserved
		return 0, false
	case src == insts.Zero:
		return insts.NewItype(insts.OpJALR, insts.Zero, r, 0), true
	case r == insts.Zero:
		return hint(cfg)
	default:
		return insts.NewRtype(insts.OpADD, r, insts.Zero, src), true
	}
}

// cebreakJalrAdd covers C.EBREAK, C.JALR (rs2=0) and C.ADD (rs2!=0).
func cebreakJalrAdd(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	r, src := rd(word), crs2(word)
	switch {
	case src == insts.Zero && r == insts.Zero:
		return insts.Blank(insts.OpEBREAK), true
	case src == insts.Zero:
		return insts.NewItype(insts.OpJALR, insts.RA, r, 0), true
	case r == insts.Zero:
		return hint(cfg)
	default:
		return insts.NewRtype(insts.OpADD, r, r, src), true
	}
}

func cswsp(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewStype(insts.OpSW, int32(cswspUimmediate(word)), insts.SP, crs2(word)), true
}

func csdsp(word uint32, _ insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return 0, false
	}
	return insts.NewStype(insts.OpSD, int32(csdspUimmediate(word)), insts.SP, crs2(word)), true
}

func cwideALUBuilder(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	if cfg.Is32Bit() {
		return 0, false
	}
	return caluBuilder(word, op, cfg)
}

// Several entries cover more than one mnemonic; their builders tell them
// apart by operand fields (or by width, for c.jal/c.addiw). c.addi16sp must
// come before c.lui, whose mask contains it.
var rvcInstructions = []InstructionInfo{
	op("c.addi4spn", "15..13=0 1..0=0", insts.OpADDI, caddi4spn),
	op("c.lw", "15..13=2 1..0=0", insts.OpLW, clw),
	op("c.ld", "15..13=3 1..0=0", insts.OpLD, cld),
	op("c.sw", "15..13=6 1..0=0", insts.OpSW, csw),
	op("c.sd", "15..13=7 1..0=0", insts.OpSD, csd),

	op("c.nop/c.addi", "15..13=0 1..0=1", insts.OpADDI, caddi),
	op("c.jal/c.addiw", "15..13=1 1..0=1", insts.OpJAL, cjalAddiw),
	op("c.li", "15..13=2 1..0=1", insts.OpADDI, cli),
	op("c.addi16sp", "15..13=3 11..7=2 1..0=1", insts.OpADDI, caddi16sp),
	op("c.lui", "15..13=3 1..0=1", insts.OpLUI, clui),
	op("c.srli", "15..13=4 11..10=0 1..0=1", insts.OpSRLI, csrli),
	op("c.srai", "15..13=4 11..10=1 1..0=1", insts.OpSRAI, csrai),
	op("c.andi", "15..13=4 11..10=2 1..0=1", insts.OpANDI, candi),
	op("c.sub", "15..13=4 12=0 11..10=3 6..5=0 1..0=1", insts.OpSUB, caluBuilder),
	op("c.xor", "15..13=4 12=0 11..10=3 6..5=1 1..0=1", insts.OpXOR, caluBuilder),
	op("c.or", "15..13=4 12=0 11..10=3 6..5=2 1..0=1", insts.OpOR, caluBuilder),
	op("c.and", "15..13=4 12=0 11..10=3 6..5=3 1..0=1", insts.OpAND, caluBuilder),
	op("c.subw", "15..13=4 12=1 11..10=3 6..5=0 1..0=1", insts.OpSUBW, cwideALUBuilder),
	op("c.addw", "15..13=4 12=1 11..10=3 6..5=1 1..0=1", insts.OpADDW, cwideALUBuilder),
	op("c.j", "15..13=5 1..0=1", insts.OpJAL, cj),
	op("c.beqz", "15..13=6 1..0=1", insts.OpBEQ, cbranchBuilder),
	op("c.bnez", "15..13=7 1..0=1", insts.OpBNE, cbranchBuilder),

	op("c.slli", "15..13=0 1..0=2", insts.OpSLLI, cslli),
	op("c.lwsp", "15..13=2 1..0=2", insts.OpLW, clwsp),
	op("c.ldsp", "15..13=3 1..0=2", insts.OpLD, cldsp),
	op("c.jr/c.mv", "15..13=4 12=0 1..0=2", insts.OpJALR, cjrMv),
	op("c.ebreak/c.jalr/c.add", "15..13=4 12=1 1..0=2", insts.OpADD, cebreakJalrAdd),
	op("c.swsp", "15..13=6 1..0=2", insts.OpSW, cswsp),
	op("c.sdsp", "15..13=7 1..0=2", insts.OpSD, csdsp),
}

// RVC is the compressed extension. Its words are 16 bits wide; bits above
// 15 are ignored.
var RVC = NewTable(ExtC, 2, rvcInstructions)
