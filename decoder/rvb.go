package decoder

import "github.com/apparentlymart/riscv-decode/insts"

// bImmBuilder is for the bit-manipulation immediates, which are shift
// amounts or bit indices of up to six bits. On RV32 an immediate with bit 5
// set is reserved.
func bImmBuilder(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool) {
	imm := Extract(word, 20, 6, 0)
	if cfg.Is32Bit() && imm&0x20 != 0 {
		return 0, false
	}
	return insts.NewItype(op, rd(word), rs1(word), int32(imm)), true
}

var rvbInstructions = []InstructionInfo{
	// Zba
	op("add.uw", "31..25=0x04 14..12=0 6..2=0x0E 1..0=3", insts.OpADDUW, rv64Only(rBuilder)),
	op("sh1add", "31..25=0x10 14..12=2 6..2=0x0C 1..0=3", insts.OpSH1ADD, rBuilder),
	op("sh2add", "31..25=0x10 14..12=4 6..2=0x0C 1..0=3", insts.OpSH2ADD, rBuilder),
	op("sh3add", "31..25=0x10 14..12=6 6..2=0x0C 1..0=3", insts.OpSH3ADD, rBuilder),
	op("sh1add.uw", "31..25=0x10 14..12=2 6..2=0x0E 1..0=3", insts.OpSH1ADDUW, rv64Only(rBuilder)),
	op("sh2add.uw", "31..25=0x10 14..12=4 6..2=0x0E 1..0=3", insts.OpSH2ADDUW, rv64Only(rBuilder)),
	op("sh3add.uw", "31..25=0x10 14..12=6 6..2=0x0E 1..0=3", insts.OpSH3ADDUW, rv64Only(rBuilder)),
	op("slli.uw", "31..26=0x02 14..12=1 6..2=0x06 1..0=3", insts.OpSLLIUW, rv64Only(bImmBuilder)),

	// Zbb
	op("andn", "31..25=0x20 14..12=7 6..2=0x0C 1..0=3", insts.OpANDN, rBuilder),
	op("orn", "31..25=0x20 14..12=6 6..2=0x0C 1..0=3", insts.OpORN, rBuilder),
	op("xnor", "31..25=0x20 14..12=4 6..2=0x0C 1..0=3", insts.OpXNOR, rBuilder),
	op("clz", "31..20=0x600 14..12=1 6..2=0x04 1..0=3", insts.OpCLZ, r1Builder),
	op("ctz", "31..20=0x601 14..12=1 6..2=0x04 1..0=3", insts.OpCTZ, r1Builder),
	op("cpop", "31..20=0x602 14..12=1 6..2=0x04 1..0=3", insts.OpCPOP, r1Builder),
	op("sext.b", "31..20=0x604 14..12=1 6..2=0x04 1..0=3", insts.OpSEXTB, r1Builder),
	op("sext.h", "31..20=0x605 14..12=1 6..2=0x04 1..0=3", insts.OpSEXTH, r1Builder),
	op("clzw", "31..20=0x600 14..12=1 6..2=0x06 1..0=3", insts.OpCLZW, rv64Only(r1Builder)),
	op("ctzw", "31..20=0x601 14..12=1 6..2=0x06 1..0=3", insts.OpCTZW, rv64Only(r1Builder)),
	op("cpopw", "31..20=0x602 14..12=1 6..2=0x06 1..0=3", insts.OpCPOPW, rv64Only(r1Builder)),
	op("max", "31..25=0x05 14..12=6 6..2=0x0C 1..0=3", insts.OpMAX, rBuilder),
	op("maxu", "31..25=0x05 14..12=7 6..2=0x0C 1..0=3", insts.OpMAXU, rBuilder),
	op("min", "31..25=0x05 14..12=4 6..2=0x0C 1..0=3", insts.OpMIN, rBuilder),
	op("minu", "31..25=0x05 14..12=5 6..2=0x0C 1..0=3", insts.OpMINU, rBuilder),
	// zext.h is a separate encoding for each width; each is reserved on the
	// other.
	op("zext.h", "31..20=0x080 14..12=4 6..2=0x0C 1..0=3", insts.OpZEXTH, rv32Only(r1Builder)),
	op("zext.h", "31..20=0x080 14..12=4 6..2=0x0E 1..0=3", insts.OpZEXTH, rv64Only(r1Builder)),
	op("rol", "31..25=0x30 14..12=1 6..2=0x0C 1..0=3", insts.OpROL, rBuilder),
	op("ror", "31..25=0x30 14..12=5 6..2=0x0C 1..0=3", insts.OpROR, rBuilder),
	op("rolw", "31..25=0x30 14..12=1 6..2=0x0E 1..0=3", insts.OpROLW, rv64Only(rBuilder)),
	op("rorw", "31..25=0x30 14..12=5 6..2=0x0E 1..0=3", insts.OpRORW, rv64Only(rBuilder)),
	op("rori", "31..26=0x18 14..12=5 6..2=0x04 1..0=3", insts.OpRORI, bImmBuilder),
	op("roriw", "31..25=0x30 14..12=5 6..2=0x06 1..0=3", insts.OpRORIW, rv64Only(is1fBuilder)),
	op("orc.b", "31..20=0x287 14..12=5 6..2=0x04 1..0=3", insts.OpORCB, r1Builder),
	op("rev8", "31..20=0x698 14..12=5 6..2=0x04 1..0=3", insts.OpREV8, rv32Only(r1Builder)),
	op("rev8", "31..20=0x6b8 14..12=5 6..2=0x04 1..0=3", insts.OpREV8, rv64Only(r1Builder)),

	// Zbc
	op("clmul", "31..25=0x05 14..12=1 6..2=0x0C 1..0=3", insts.OpCLMUL, rBuilder),
	op("clmulr", "31..25=0x05 14..12=2 6..2=0x0C 1..0=3", insts.OpCLMULR, rBuilder),
	op("clmulh", "31..25=0x05 14..12=3 6..2=0x0C 1..0=3", insts.OpCLMULH, rBuilder),

	// Zbs
	op("bclr", "31..25=0x24 14..12=1 6..2=0x0C 1..0=3", insts.OpBCLR, rBuilder),
	op("bext", "31..25=0x24 14..12=5 6..2=0x0C 1..0=3", insts.OpBEXT, rBuilder),
	op("binv", "31..25=0x34 14..12=1 6..2=0x0C 1..0=3", insts.OpBINV, rBuilder),
	op("bset", "31..25=0x14 14..12=1 6..2=0x0C 1..0=3", insts.OpBSET, rBuilder),
	op("bclri", "31..26=0x12 14..12=1 6..2=0x04 1..0=3", insts.OpBCLRI, bImmBuilder),
	op("bexti", "31..26=0x12 14..12=5 6..2=0x04 1..0=3", insts.OpBEXTI, bImmBuilder),
	op("binvi", "31..26=0x1a 14..12=1 6..2=0x04 1..0=3", insts.OpBINVI, bImmBuilder),
	op("bseti", "31..26=0x0a 14..12=1 6..2=0x04 1..0=3", insts.OpBSETI, bImmBuilder),
}

// RVB is the bit-manipulation extension (Zba, Zbb, Zbc and Zbs).
var RVB = NewTable(ExtB, 4, rvbInstructions)
