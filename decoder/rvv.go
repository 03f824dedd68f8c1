package decoder

import "github.com/apparentlymart/riscv-decode/insts"

// vm reports the state of the vector mask bit, bit 25. The bit is carried
// through as encoded: a set bit means the operation is unmasked.
func vm(word uint32) bool {
	return word&(1<<25) != 0
}

func vvBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewVVtype(op, rd(word), rs1(word), rs2(word), vm(word)), true
}

func vxBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewVXtype(op, rd(word), rs1(word), rs2(word), vm(word)), true
}

// viBuilder takes the 5-bit immediate from the rs1 field as is. Whether it
// is signed depends on the operation, so it is left to the consumer.
func viBuilder(word uint32, op insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewVItype(op, rd(word), rs2(word), Extract(word, 15, 5, 0), vm(word)), true
}

// vsetvli: zimm[10:0] in bits 30..20.
func vsetvliBuilder(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewItype(insts.OpVSETVLI, rd(word), rs1(word), int32(Extract(word, 20, 11, 0))), true
}

// vsetivli: zimm[9:0] in bits 29..20. The rs1 slot carries the 5-bit AVL
// immediate rather than a register.
func vsetivliBuilder(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewItype(insts.OpVSETIVLI, rd(word), rs1(word), int32(Extract(word, 20, 10, 0))), true
}

// vsetvl takes its vtype from rs2, so it has no immediate.
func vsetvlBuilder(word uint32, _ insts.Opcode, _ *Config) (insts.Instruction, bool) {
	return insts.NewRtype(insts.OpVSETVL, rd(word), rs1(word), rs2(word)), true
}

var rvvInstructions = []InstructionInfo{
	op("vsetvli", "31=0 14..12=7 6..2=0x15 1..0=3", insts.OpVSETVLI, vsetvliBuilder),
	op("vsetivli", "31..30=3 14..12=7 6..2=0x15 1..0=3", insts.OpVSETIVLI, vsetivliBuilder),
	op("vsetvl", "31..25=0x40 14..12=7 6..2=0x15 1..0=3", insts.OpVSETVL, vsetvlBuilder),

	// Unit-stride memory. vd (or vs3 for stores) is in the rd slot and the
	// lumop/sumop field, always zero here, fills vs2.
	op("vle8.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=0 6..2=0x01 1..0=3", insts.OpVLE8V, vxBuilder),
	op("vle16.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=5 6..2=0x01 1..0=3", insts.OpVLE16V, vxBuilder),
	op("vle32.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=6 6..2=0x01 1..0=3", insts.OpVLE32V, vxBuilder),
	op("vle64.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=7 6..2=0x01 1..0=3", insts.OpVLE64V, vxBuilder),
	op("vse8.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=0 6..2=0x09 1..0=3", insts.OpVSE8V, vxBuilder),
	op("vse16.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=5 6..2=0x09 1..0=3", insts.OpVSE16V, vxBuilder),
	op("vse32.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=6 6..2=0x09 1..0=3", insts.OpVSE32V, vxBuilder),
	op("vse64.v", "31..29=0 28=0 27..26=0 24..20=0 14..12=7 6..2=0x09 1..0=3", insts.OpVSE64V, vxBuilder),

	// OPIVV
	op("vadd.vv", "31..26=0x00 14..12=0 6..2=0x15 1..0=3", insts.OpVADDVV, vvBuilder),
	op("vsub.vv", "31..26=0x02 14..12=0 6..2=0x15 1..0=3", insts.OpVSUBVV, vvBuilder),
	op("vminu.vv", "31..26=0x04 14..12=0 6..2=0x15 1..0=3", insts.OpVMINUVV, vvBuilder),
	op("vmin.vv", "31..26=0x05 14..12=0 6..2=0x15 1..0=3", insts.OpVMINVV, vvBuilder),
	op("vmaxu.vv", "31..26=0x06 14..12=0 6..2=0x15 1..0=3", insts.OpVMAXUVV, vvBuilder),
	op("vmax.vv", "31..26=0x07 14..12=0 6..2=0x15 1..0=3", insts.OpVMAXVV, vvBuilder),
	op("vand.vv", "31..26=0x09 14..12=0 6..2=0x15 1..0=3", insts.OpVANDVV, vvBuilder),
	op("vor.vv", "31..26=0x0a 14..12=0 6..2=0x15 1..0=3", insts.OpVORVV, vvBuilder),
	op("vxor.vv", "31..26=0x0b 14..12=0 6..2=0x15 1..0=3", insts.OpVXORVV, vvBuilder),
	op("vmerge.vvm", "31..26=0x17 25=0 14..12=0 6..2=0x15 1..0=3", insts.OpVMERGEVVM, vvBuilder),
	op("vmv.v.v", "31..26=0x17 25=1 24..20=0 14..12=0 6..2=0x15 1..0=3", insts.OpVMVVV, vvBuilder),
	op("vmseq.vv", "31..26=0x18 14..12=0 6..2=0x15 1..0=3", insts.OpVMSEQVV, vvBuilder),
	op("vmsne.vv", "31..26=0x19 14..12=0 6..2=0x15 1..0=3", insts.OpVMSNEVV, vvBuilder),
	op("vmsltu.vv", "31..26=0x1a 14..12=0 6..2=0x15 1..0=3", insts.OpVMSLTUVV, vvBuilder),
	op("vmslt.vv", "31..26=0x1b 14..12=0 6..2=0x15 1..0=3", insts.OpVMSLTVV, vvBuilder),
	op("vmsleu.vv", "31..26=0x1c 14..12=0 6..2=0x15 1..0=3", insts.OpVMSLEUVV, vvBuilder),
	op("vmsle.vv", "31..26=0x1d 14..12=0 6..2=0x15 1..0=3", insts.OpVMSLEVV, vvBuilder),
	op("vsll.vv", "31..26=0x25 14..12=0 6..2=0x15 1..0=3", insts.OpVSLLVV, vvBuilder),
	op("vsrl.vv", "31..26=0x28 14..12=0 6..2=0x15 1..0=3", insts.OpVSRLVV, vvBuilder),
	op("vsra.vv", "31..26=0x29 14..12=0 6..2=0x15 1..0=3", insts.OpVSRAVV, vvBuilder),

	// OPIVX
	op("vadd.vx", "31..26=0x00 14..12=4 6..2=0x15 1..0=3", insts.OpVADDVX, vxBuilder),
	op("vsub.vx", "31..26=0x02 14..12=4 6..2=0x15 1..0=3", insts.OpVSUBVX, vxBuilder),
	op("vrsub.vx", "31..26=0x03 14..12=4 6..2=0x15 1..0=3", insts.OpVRSUBVX, vxBuilder),
	op("vminu.vx", "31..26=0x04 14..12=4 6..2=0x15 1..0=3", insts.OpVMINUVX, vxBuilder),
	op("vmin.vx", "31..26=0x05 14..12=4 6..2=0x15 1..0=3", insts.OpVMINVX, vxBuilder),
	op("vmaxu.vx", "31..26=0x06 14..12=4 6..2=0x15 1..0=3", insts.OpVMAXUVX, vxBuilder),
	op("vmax.vx", "31..26=0x07 14..12=4 6..2=0x15 1..0=3", insts.OpVMAXVX, vxBuilder),
	op("vand.vx", "31..26=0x09 14..12=4 6..2=0x15 1..0=3", insts.OpVANDVX, vxBuilder),
	op("vor.vx", "31..26=0x0a 14..12=4 6..2=0x15 1..0=3", insts.OpVORVX, vxBuilder),
	op("vxor.vx", "31..26=0x0b 14..12=4 6..2=0x15 1..0=3", insts.OpVXORVX, vxBuilder),
	op("vmerge.vxm", "31..26=0x17 25=0 14..12=4 6..2=0x15 1..0=3", insts.OpVMERGEVXM, vxBuilder),
	op("vmv.v.x", "31..26=0x17 25=1 24..20=0 14..12=4 6..2=0x15 1..0=3", insts.OpVMVVX, vxBuilder),
	op("vmseq.vx", "31..26=0x18 14..12=4 6..2=0x15 1..0=3", insts.OpVMSEQVX, vxBuilder),
	op("vmsne.vx", "31..26=0x19 14..12=4 6..2=0x15 1..0=3", insts.OpVMSNEVX, vxBuilder),
	op("vmsltu.vx", "31..26=0x1a 14..12=4 6..2=0x15 1..0=3", insts.OpVMSLTUVX, vxBuilder),
	op("vmslt.vx", "31..26=0x1b 14..12=4 6..2=0x15 1..0=3", insts.OpVMSLTVX, vxBuilder),
	op("vmsleu.vx", "31..26=0x1c 14..12=4 6..2=0x15 1..0=3", insts.OpVMSLEUVX, vxBuilder),
	op("vmsle.vx", "31..26=0x1d 14..12=4 6..2=0x15 1..0=3", insts.OpVMSLEVX, vxBuilder),
	op("vmsgtu.vx", "31..26=0x1e 14..12=4 6..2=0x15 1..0=3", insts.OpVMSGTUVX, vxBuilder),
	op("vmsgt.vx", "31..26=0x1f 14..12=4 6..2=0x15 1..0=3", insts.OpVMSGTVX, vxBuilder),
	op("vsll.vx", "31..26=0x25 14..12=4 6..2=0x15 1..0=3", insts.OpVSLLVX, vxBuilder),
	op("vsrl.vx", "31..26=0x28 14..12=4 6..2=0x15 1..0=3", insts.OpVSRLVX, vxBuilder),
	op("vsra.vx", "31..26=0x29 14..12=4 6..2=0x15 1..0=3", insts.OpVSRAVX, vxBuilder),

	// OPIVI
	op("vadd.vi", "31..26=0x00 14..12=3 6..2=0x15 1..0=3", insts.OpVADDVI, viBuilder),
	op("vrsub.vi", "31..26=0x03 14..12=3 6..2=0x15 1..0=3", insts.OpVRSUBVI, viBuilder),
	op("vand.vi", "31..26=0x09 14..12=3 6..2=0x15 1..0=3", insts.OpVANDVI, viBuilder),
	op("vor.vi", "31..26=0x0a 14..12=3 6..2=0x15 1..0=3", insts.OpVORVI, viBuilder),
	op("vxor.vi", "31..26=0x0b 14..12=3 6..2=0x15 1..0=3", insts.OpVXORVI, viBuilder),
	op("vmerge.vim", "31..26=0x17 25=0 14..12=3 6..2=0x15 1..0=3", insts.OpVMERGEVIM, viBuilder),
	op("vmv.v.i", "31..26=0x17 25=1 24..20=0 14..12=3 6..2=0x15 1..0=3", insts.OpVMVVI, viBuilder),
	op("vmseq.vi", "31..26=0x18 14..12=3 6..2=0x15 1..0=3", insts.OpVMSEQVI, viBuilder),
	op("vmsne.vi", "31..26=0x19 14..12=3 6..2=0x15 1..0=3", insts.OpVMSNEVI, viBuilder),
	op("vmsleu.vi", "31..26=0x1c 14..12=3 6..2=0x15 1..0=3", insts.OpVMSLEUVI, viBuilder),
	op("vmsle.vi", "31..26=0x1d 14..12=3 6..2=0x15 1..0=3", insts.OpVMSLEVI, viBuilder),
	op("vmsgtu.vi", "31..26=0x1e 14..12=3 6..2=0x15 1..0=3", insts.OpVMSGTUVI, viBuilder),
	op("vmsgt.vi", "31..26=0x1f 14..12=3 6..2=0x15 1..0=3", insts.OpVMSGTVI, viBuilder),
	op("vsll.vi", "31..26=0x25 14..12=3 6..2=0x15 1..0=3", insts.OpVSLLVI, viBuilder),
	op("vsrl.vi", "31..26=0x28 14..12=3 6..2=0x15 1..0=3", insts.OpVSRLVI, viBuilder),
	op("vsra.vi", "31..26=0x29 14..12=3 6..2=0x15 1..0=3", insts.OpVSRAVI, viBuilder),

	// OPMVV / OPMVX
	op("vdivu.vv", "31..26=0x20 14..12=2 6..2=0x15 1..0=3", insts.OpVDIVUVV, vvBuilder),
	op("vdiv.vv", "31..26=0x21 14..12=2 6..2=0x15 1..0=3", insts.OpVDIVVV, vvBuilder),
	op("vremu.vv", "31..26=0x22 14..12=2 6..2=0x15 1..0=3", insts.OpVREMUVV, vvBuilder),
	op("vrem.vv", "31..26=0x23 14..12=2 6..2=0x15 1..0=3", insts.OpVREMVV, vvBuilder),
	op("vmulhu.vv", "31..26=0x24 14..12=2 6..2=0x15 1..0=3", insts.OpVMULHUVV, vvBuilder),
	op("vmul.vv", "31..26=0x25 14..12=2 6..2=0x15 1..0=3", insts.OpVMULVV, vvBuilder),
	op("vmulh.vv", "31..26=0x27 14..12=2 6..2=0x15 1..0=3", insts.OpVMULHVV, vvBuilder),
	op("vdivu.vx", "31..26=0x20 14..12=6 6..2=0x15 1..0=3", insts.OpVDIVUVX, vxBuilder),
	op("vdiv.vx", "31..26=0x21 14..12=6 6..2=0x15 1..0=3", insts.OpVDIVVX, vxBuilder),
	op("vremu.vx", "31..26=0x22 14..12=6 6..2=0x15 1..0=3", insts.OpVREMUVX, vxBuilder),
	op("vrem.vx", "31..26=0x23 14..12=6 6..2=0x15 1..0=3", insts.OpVREMVX, vxBuilder),
	op("vmulhu.vx", "31..26=0x24 14..12=6 6..2=0x15 1..0=3", insts.OpVMULHUVX, vxBuilder),
	op("vmul.vx", "31..26=0x25 14..12=6 6..2=0x15 1..0=3", insts.OpVMULVX, vxBuilder),
	op("vmulh.vx", "31..26=0x27 14..12=6 6..2=0x15 1..0=3", insts.OpVMULHVX, vxBuilder),
}

// RVV is the subset of the vector extension this package decodes: vector
// configuration, unit-stride loads and stores, and single-width integer
// arithmetic.
var RVV = NewTable(ExtV, 4, rvvInstructions)
