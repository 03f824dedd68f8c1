package decoder

import "github.com/apparentlymart/riscv-decode/insts"

var rvmInstructions = []InstructionInfo{
	op("mul", "31..25=1 14..12=0 6..2=0x0C 1..0=3", insts.OpMUL, rBuilder),
	op("mulh", "31..25=1 14..12=1 6..2=0x0C 1..0=3", insts.OpMULH, rBuilder),
	op("mulhsu", "31..25=1 14..12=2 6..2=0x0C 1..0=3", insts.OpMULHSU, rBuilder),
	op("mulhu", "31..25=1 14..12=3 6..2=0x0C 1..0=3", insts.OpMULHU, rBuilder),
	op("div", "31..25=1 14..12=4 6..2=0x0C 1..0=3", insts.OpDIV, rBuilder),
	op("divu", "31..25=1 14..12=5 6..2=0x0C 1..0=3", insts.OpDIVU, rBuilder),
	op("rem", "31..25=1 14..12=6 6..2=0x0C 1..0=3", insts.OpREM, rBuilder),
	op("remu", "31..25=1 14..12=7 6..2=0x0C 1..0=3", insts.OpREMU, rBuilder),

	op("mulw", "31..25=1 14..12=0 6..2=0x0E 1..0=3", insts.OpMULW, rv64Only(rBuilder)),
	op("divw", "31..25=1 14..12=4 6..2=0x0E 1..0=3", insts.OpDIVW, rv64Only(rBuilder)),
	op("divuw", "31..25=1 14..12=5 6..2=0x0E 1..0=3", insts.OpDIVUW, rv64Only(rBuilder)),
	op("remw", "31..25=1 14..12=6 6..2=0x0E 1..0=3", insts.OpREMW, rv64Only(rBuilder)),
	op("remuw", "31..25=1 14..12=7 6..2=0x0E 1..0=3", insts.OpREMUW, rv64Only(rBuilder)),
}

// RVM is the integer multiply and divide extension.
var RVM = NewTable(ExtM, 4, rvmInstructions)
