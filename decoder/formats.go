package decoder

import "github.com/apparentlymart/riscv-decode/insts"

// Builders for the base instruction formats. They only move fields around;
// width and version legality is decided by the extension-specific builders
// and by the rv32Only/rv64Only wrappers.

func rBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewRtype(op, rd(word), rs1(word), rs2(word)), true
}

// r1Builder is for single-source operations whose rs2 field is part of the
// opcode (clz, sext.b, ...).
func r1Builder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewRtype(op, rd(word), rs1(word), insts.Zero), true
}

func isBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewItype(op, rd(word), rs1(word), itypeImmediate(word)), true
}

func ssBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewStype(op, stypeImmediate(word), rs1(word), rs2(word)), true
}

func sbBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewStype(op, btypeImmediate(word), rs1(word), rs2(word)), true
}

func usBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewUtype(op, rd(word), utypeImmediate(word)), true
}

func ujBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewUtype(op, rd(word), jtypeImmediate(word)), true
}

func blankBuilder(_ uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.Blank(op), true
}

// rv64Only restricts b to RV64 and RV128.
func rv64Only(b Builder) Builder {
	return func(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool) {
		if cfg.Is32Bit() {
			return 0, false
		}
		return b(word, op, cfg)
	}
}

// rv32Only restricts b to RV32.
func rv32Only(b Builder) Builder {
	return func(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool) {
		if !cfg.Is32Bit() {
			return 0, false
		}
		return b(word, op, cfg)
	}
}
