package decoder

import "github.com/apparentlymart/riscv-decode/insts"

// isAluBuilder is for the OP-IMM shifts, whose shift amount is as wide as
// the configured register width allows.
func isAluBuilder(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	shamt := itypeImmediate(word) & int32(cfg.ShiftMask())
	return insts.NewItype(op, rd(word), rs1(word), shamt), true
}

// is1fBuilder is for the OP-IMM-32 shifts, which always take a 5-bit shift
// amount.
func is1fBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewItype(op, rd(word), rs1(word), itypeImmediate(word)&0x1f), true
}

// fenceBuilder stores fm, pred and succ in the three register slots of an
// R-type instruction.
func fenceBuilder(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return NewFence(
		uint8(Extract(word, 28, 4, 0)),
		uint8(Extract(word, 24, 4, 0)),
		uint8(Extract(word, 20, 4, 0)),
	), true
}

// NewFence builds a FENCE instruction from its fence mode and its
// predecessor and successor sets.
func NewFence(fm, pred, succ uint8) insts.Instruction {
	return insts.NewRtype(insts.OpFENCE, insts.Register(fm), insts.Register(pred), insts.Register(succ))
}

// Fence views the operands of a FENCE instruction.
type Fence insts.Instruction

func (f Fence) FM() uint8   { return uint8(insts.Rtype(f).Rd()) }
func (f Fence) Pred() uint8 { return uint8(insts.Rtype(f).Rs1()) }
func (f Fence) Succ() uint8 { return uint8(insts.Rtype(f).Rs2()) }

var rviInstructions = []InstructionInfo{
	op("lui", "6..2=0x0D 1..0=3", insts.OpLUI, usBuilder),
	op("auipc", "6..2=0x05 1..0=3", insts.OpAUIPC, usBuilder),
	op("jal", "6..2=0x1b 1..0=3", insts.OpJAL, ujBuilder),
	op("jalr", "14..12=0 6..2=0x19 1..0=3", insts.OpJALR, isBuilder),

	op("beq", "14..12=0 6..2=0x18 1..0=3", insts.OpBEQ, sbBuilder),
	op("bne", "14..12=1 6..2=0x18 1..0=3", insts.OpBNE, sbBuilder),
	op("blt", "14..12=4 6..2=0x18 1..0=3", insts.OpBLT, sbBuilder),
	op("bge", "14..12=5 6..2=0x18 1..0=3", insts.OpBGE, sbBuilder),
	op("bltu", "14..12=6 6..2=0x18 1..0=3", insts.OpBLTU, sbBuilder),
	op("bgeu", "14..12=7 6..2=0x18 1..0=3", insts.OpBGEU, sbBuilder),

	op("lb", "14..12=0 6..2=0x00 1..0=3", insts.OpLB, isBuilder),
	op("lh", "14..12=1 6..2=0x00 1..0=3", insts.OpLH, isBuilder),
	op("lw", "14..12=2 6..2=0x00 1..0=3", insts.OpLW, isBuilder),
	op("ld", "14..12=3 6..2=0x00 1..0=3", insts.OpLD, rv64Only(isBuilder)),
	op("lbu", "14..12=4 6..2=0x00 1..0=3", insts.OpLBU, isBuilder),
	op("lhu", "14..12=5 6..2=0x00 1..0=3", insts.OpLHU, isBuilder),
	op("lwu", "14..12=6 6..2=0x00 1..0=3", insts.OpLWU, rv64Only(isBuilder)),

	op("sb", "14..12=0 6..2=0x08 1..0=3", insts.OpSB, ssBuilder),
	op("sh", "14..12=1 6..2=0x08 1..0=3", insts.OpSH, ssBuilder),
	op("sw", "14..12=2 6..2=0x08 1..0=3", insts.OpSW, ssBuilder),
	op("sd", "14..12=3 6..2=0x08 1..0=3", insts.OpSD, rv64Only(ssBuilder)),

	op("addi", "14..12=0 6..2=0x04 1..0=3", insts.OpADDI, isBuilder),
	op("slti", "14..12=2 6..2=0x04 1..0=3", insts.OpSLTI, isBuilder),
	op("sltiu", "14..12=3 6..2=0x04 1..0=3", insts.OpSLTIU, isBuilder),
	op("xori", "14..12=4 6..2=0x04 1..0=3", insts.OpXORI, isBuilder),
	op("ori", "14..12=6 6..2=0x04 1..0=3", insts.OpORI, isBuilder),
	op("andi", "14..12=7 6..2=0x04 1..0=3", insts.OpANDI, isBuilder),
	op("slli", "31..26=0 14..12=1 6..2=0x04 1..0=3", insts.OpSLLI, isAluBuilder),
	op("srli", "31..26=0 14..12=5 6..2=0x04 1..0=3", insts.OpSRLI, isAluBuilder),
	op("srai", "31..26=0x10 14..12=5 6..2=0x04 1..0=3", insts.OpSRAI, isAluBuilder),

	op("add", "31..25=0 14..12=0 6..2=0x0C 1..0=3", insts.OpADD, rBuilder),
	op("sub", "31..25=0x20 14..12=0 6..2=0x0C 1..0=3", insts.OpSUB, rBuilder),
	op("sll", "31..25=0 14..12=1 6..2=0x0C 1..0=3", insts.OpSLL, rBuilder),
	op("slt", "31..25=0 14..12=2 6..2=0x0C 1..0=3", insts.OpSLT, rBuilder),
	op("sltu", "31..25=0 14..12=3 6..2=0x0C 1..0=3", insts.OpSLTU, rBuilder),
	op("xor", "31..25=0 14..12=4 6..2=0x0C 1..0=3", insts.OpXOR, rBuilder),
	op("srl", "31..25=0 14..12=5 6..2=0x0C 1..0=3", insts.OpSRL, rBuilder),
	op("sra", "31..25=0x20 14..12=5 6..2=0x0C 1..0=3", insts.OpSRA, rBuilder),
	op("or", "31..25=0 14..12=6 6..2=0x0C 1..0=3", insts.OpOR, rBuilder),
	op("and", "31..25=0 14..12=7 6..2=0x0C 1..0=3", insts.OpAND, rBuilder),

	op("fence", "14..12=0 6..2=0x03 1..0=3", insts.OpFENCE, fenceBuilder),
	op("fence.i", "14..12=1 6..2=0x03 1..0=3", insts.OpFENCEI, blankBuilder),
	op("ecall", "31..0=0x00000073", insts.OpECALL, blankBuilder),
	op("ebreak", "31..0=0x00100073", insts.OpEBREAK, blankBuilder),

	op("addiw", "14..12=0 6..2=0x06 1..0=3", insts.OpADDIW, rv64Only(isBuilder)),
	op("slliw", "31..25=0 14..12=1 6..2=0x06 1..0=3", insts.OpSLLIW, rv64Only(is1fBuilder)),
	op("srliw", "31..25=0 14..12=5 6..2=0x06 1..0=3", insts.OpSRLIW, rv64Only(is1fBuilder)),
	op("sraiw", "31..25=0x20 14..12=5 6..2=0x06 1..0=3", insts.OpSRAIW, rv64Only(is1fBuilder)),
	op("addw", "31..25=0 14..12=0 6..2=0x0E 1..0=3", insts.OpADDW, rv64Only(rBuilder)),
	op("subw", "31..25=0x20 14..12=0 6..2=0x0E 1..0=3", insts.OpSUBW, rv64Only(rBuilder)),
	op("sllw", "31..25=0 14..12=1 6..2=0x0E 1..0=3", insts.OpSLLW, rv64Only(rBuilder)),
	op("srlw", "31..25=0 14..12=5 6..2=0x0E 1..0=3", insts.OpSRLW, rv64Only(rBuilder)),
	op("sraw", "31..25=0x20 14..12=5 6..2=0x0E 1..0=3", insts.OpSRAW, rv64Only(rBuilder)),
}

// RVI is the base integer instruction set, covering RV32I and RV64I.
var RVI = NewTable(ExtI, 4, rviInstructions)
