package insts

import "fmt"

// Opcode identifies the operation an Instruction performs. Compressed
// instructions have no opcodes of their own: they decode to the opcode of
// the full-length operation they expand to.
type Opcode uint16

const (
	OpUnloaded Opcode = iota
	// OpNOP is produced for HINT encodings, which must not have any
	// architecturally visible effect.
	OpNOP

	// RV32I / RV64I
	OpLUI
	OpAUIPC
	OpJAL
	OpJALR
	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU
	OpLB
	OpLH
	OpLW
	OpLD
	OpLBU
	OpLHU
	OpLWU
	OpSB
	OpSH
	OpSW
	OpSD
	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI
	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND
	OpFENCE
	OpFENCEI
	OpECALL
	OpEBREAK
	OpADDIW
	OpSLLIW
	OpSRLIW
	OpSRAIW
	OpADDW
	OpSUBW
	OpSLLW
	OpSRLW
	OpSRAW

	// M
	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU
	OpMULW
	OpDIVW
	OpDIVUW
	OpREMW
	OpREMUW

	// B (Zba, Zbb, Zbc, Zbs)
	OpADDUW
	OpSH1ADD
	OpSH2ADD
	OpSH3ADD
	OpSH1ADDUW
	OpSH2ADDUW
	OpSH3ADDUW
	OpSLLIUW
	OpANDN
	OpORN
	OpXNOR
	OpCLZ
	OpCLZW
	OpCTZ
	OpCTZW
	OpCPOP
	OpCPOPW
	OpMAX
	OpMAXU
	OpMIN
	OpMINU
	OpSEXTB
	OpSEXTH
	OpZEXTH
	OpROL
	OpROLW
	OpROR
	OpRORI
	OpRORIW
	OpRORW
	OpORCB
	OpREV8
	OpCLMUL
	OpCLMULH
	OpCLMULR
	OpBCLR
	OpBCLRI
	OpBEXT
	OpBEXTI
	OpBINV
	OpBINVI
	OpBSET
	OpBSETI

	// V
	OpVSETVLI
	OpVSETIVLI
	OpVSETVL
	OpVLE8V
	OpVLE16V
	OpVLE32V
	OpVLE64V
	OpVSE8V
	OpVSE16V
	OpVSE32V
	OpVSE64V
	OpVADDVV
	OpVADDVX
	OpVADDVI
	OpVSUBVV
	OpVSUBVX
	OpVRSUBVX
	OpVRSUBVI
	OpVANDVV
	OpVANDVX
	OpVANDVI
	OpVORVV
	OpVORVX
	OpVORVI
	OpVXORVV
	OpVXORVX
	OpVXORVI
	OpVSLLVV
	OpVSLLVX
	OpVSLLVI
	OpVSRLVV
	OpVSRLVX
	OpVSRLVI
	OpVSRAVV
	OpVSRAVX
	OpVSRAVI
	OpVMINUVV
	OpVMINUVX
	OpVMINVV
	OpVMINVX
	OpVMAXUVV
	OpVMAXUVX
	OpVMAXVV
	OpVMAXVX
	OpVMSEQVV
	OpVMSEQVX
	OpVMSEQVI
	OpVMSNEVV
	OpVMSNEVX
	OpVMSNEVI
	OpVMSLTUVV
	OpVMSLTUVX
	OpVMSLTVV
	OpVMSLTVX
	OpVMSLEUVV
	OpVMSLEUVX
	OpVMSLEUVI
	OpVMSLEVV
	OpVMSLEVX
	OpVMSLEVI
	OpVMSGTUVX
	OpVMSGTUVI
	OpVMSGTVX
	OpVMSGTVI
	OpVMULVV
	OpVMULVX
	OpVMULHVV
	OpVMULHVX
	OpVMULHUVV
	OpVMULHUVX
	OpVDIVUVV
	OpVDIVUVX
	OpVDIVVV
	OpVDIVVX
	OpVREMUVV
	OpVREMUVX
	OpVREMVV
	OpVREMVX
	OpVMERGEVVM
	OpVMERGEVXM
	OpVMERGEVIM
	OpVMVVV
	OpVMVVX
	OpVMVVI

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpUnloaded: "unloaded",
	OpNOP:      "nop",

	OpLUI: "lui", OpAUIPC: "auipc", OpJAL: "jal", OpJALR: "jalr",
	OpBEQ: "beq", OpBNE: "bne", OpBLT: "blt", OpBGE: "bge", OpBLTU: "bltu", OpBGEU: "bgeu",
	OpLB: "lb", OpLH: "lh", OpLW: "lw", OpLD: "ld", OpLBU: "lbu", OpLHU: "lhu", OpLWU: "lwu",
	OpSB: "sb", OpSH: "sh", OpSW: "sw", OpSD: "sd",
	OpADDI: "addi", OpSLTI: "slti", OpSLTIU: "sltiu", OpXORI: "xori", OpORI: "ori", OpANDI: "andi",
	OpSLLI: "slli", OpSRLI: "srli", OpSRAI: "srai",
	OpADD: "add", OpSUB: "sub", OpSLL: "sll", OpSLT: "slt", OpSLTU: "sltu", OpXOR: "xor",
	OpSRL: "srl", OpSRA: "sra", OpOR: "or", OpAND: "and",
	OpFENCE: "fence", OpFENCEI: "fence.i", OpECALL: "ecall", OpEBREAK: "ebreak",
	OpADDIW: "addiw", OpSLLIW: "slliw", OpSRLIW: "srliw", OpSRAIW: "sraiw",
	OpADDW: "addw", OpSUBW: "subw", OpSLLW: "sllw", OpSRLW: "srlw", OpSRAW: "sraw",

	OpMUL: "mul", OpMULH: "mulh", OpMULHSU: "mulhsu", OpMULHU: "mulhu",
	OpDIV: "div", OpDIVU: "divu", OpREM: "rem", OpREMU: "remu",
	OpMULW: "mulw", OpDIVW: "divw", OpDIVUW: "divuw", OpREMW: "remw", OpREMUW: "remuw",

	OpADDUW: "add.uw", OpSH1ADD: "sh1add", OpSH2ADD: "sh2add", OpSH3ADD: "sh3add",
	OpSH1ADDUW: "sh1add.uw", OpSH2ADDUW: "sh2add.uw", OpSH3ADDUW: "sh3add.uw", OpSLLIUW: "slli.uw",
	OpANDN: "andn", OpORN: "orn", OpXNOR: "xnor",
	OpCLZ: "clz", OpCLZW: "clzw", OpCTZ: "ctz", OpCTZW: "ctzw", OpCPOP: "cpop", OpCPOPW: "cpopw",
	OpMAX: "max", OpMAXU: "maxu", OpMIN: "min", OpMINU: "minu",
	OpSEXTB: "sext.b", OpSEXTH: "sext.h", OpZEXTH: "zext.h",
	OpROL: "rol", OpROLW: "rolw", OpROR: "ror", OpRORI: "rori", OpRORIW: "roriw", OpRORW: "rorw",
	OpORCB: "orc.b", OpREV8: "rev8",
	OpCLMUL: "clmul", OpCLMULH: "clmulh", OpCLMULR: "clmulr",
	OpBCLR: "bclr", OpBCLRI: "bclri", OpBEXT: "bext", OpBEXTI: "bexti",
	OpBINV: "binv", OpBINVI: "binvi", OpBSET: "bset", OpBSETI: "bseti",

	OpVSETVLI: "vsetvli", OpVSETIVLI: "vsetivli", OpVSETVL: "vsetvl",
	OpVLE8V: "vle8.v", OpVLE16V: "vle16.v", OpVLE32V: "vle32.v", OpVLE64V: "vle64.v",
	OpVSE8V: "vse8.v", OpVSE16V: "vse16.v", OpVSE32V: "vse32.v", OpVSE64V: "vse64.v",
	OpVADDVV: "vadd.vv", OpVADDVX: "vadd.vx", OpVADDVI: "vadd.vi",
	OpVSUBVV: "vsub.vv", OpVSUBVX: "vsub.vx", OpVRSUBVX: "vrsub.vx", OpVRSUBVI: "vrsub.vi",
	OpVANDVV: "vand.vv", OpVANDVX: "vand.vx", OpVANDVI: "vand.vi",
	OpVORVV: "vor.vv", OpVORVX: "vor.vx", OpVORVI: "vor.vi",
	OpVXORVV: "vxor.vv", OpVXORVX: "vxor.vx", OpVXORVI: "vxor.vi",
	OpVSLLVV: "vsll.vv", OpVSLLVX: "vsll.vx", OpVSLLVI: "vsll.vi",
	OpVSRLVV: "vsrl.vv", OpVSRLVX: "vsrl.vx", OpVSRLVI: "vsrl.vi",
	OpVSRAVV: "vsra.vv", OpVSRAVX: "vsra.vx", OpVSRAVI: "vsra.vi",
	OpVMINUVV: "vminu.vv", OpVMINUVX: "vminu.vx", OpVMINVV: "vmin.vv", OpVMINVX: "vmin.vx",
	OpVMAXUVV: "vmaxu.vv", OpVMAXUVX: "vmaxu.vx", OpVMAXVV: "vmax.vv", OpVMAXVX: "vmax.vx",
	OpVMSEQVV: "vmseq.vv", OpVMSEQVX: "vmseq.vx", OpVMSEQVI: "vmseq.vi",
	OpVMSNEVV: "vmsne.vv", OpVMSNEVX: "vmsne.vx", OpVMSNEVI: "vmsne.vi",
	OpVMSLTUVV: "vmsltu.vv", OpVMSLTUVX: "vmsltu.vx", OpVMSLTVV: "vmslt.vv", OpVMSLTVX: "vmslt.vx",
	OpVMSLEUVV: "vmsleu.vv", OpVMSLEUVX: "vmsleu.vx", OpVMSLEUVI: "vmsleu.vi",
	OpVMSLEVV: "vmsle.vv", OpVMSLEVX: "vmsle.vx", OpVMSLEVI: "vmsle.vi",
	OpVMSGTUVX: "vmsgtu.vx", OpVMSGTUVI: "vmsgtu.vi", OpVMSGTVX: "vmsgt.vx", OpVMSGTVI: "vmsgt.vi",
	OpVMULVV: "vmul.vv", OpVMULVX: "vmul.vx", OpVMULHVV: "vmulh.vv", OpVMULHVX: "vmulh.vx",
	OpVMULHUVV: "vmulhu.vv", OpVMULHUVX: "vmulhu.vx",
	OpVDIVUVV: "vdivu.vv", OpVDIVUVX: "vdivu.vx", OpVDIVVV: "vdiv.vv", OpVDIVVX: "vdiv.vx",
	OpVREMUVV: "vremu.vv", OpVREMUVX: "vremu.vx", OpVREMVV: "vrem.vv", OpVREMVX: "vrem.vx",
	OpVMERGEVVM: "vmerge.vvm", OpVMERGEVXM: "vmerge.vxm", OpVMERGEVIM: "vmerge.vim",
	OpVMVVV: "vmv.v.v", OpVMVVX: "vmv.v.x", OpVMVVI: "vmv.v.i",
}

func (o Opcode) String() string {
	if o < opcodeCount && opcodeNames[o] != "" {
		return opcodeNames[o]
	}
	return fmt.Sprintf("Opcode(%d)", uint16(o))
}
