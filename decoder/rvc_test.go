package decoder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apparentlymart/riscv-decode/decoder"
	"github.com/apparentlymart/riscv-decode/insts"
)

var (
	rv32v0  = decoder.MustConfig(decoder.RV32, decoder.Version0)
	rv32v1  = decoder.MustConfig(decoder.RV32, decoder.Version1)
	rv64v0  = decoder.MustConfig(decoder.RV64, decoder.Version0)
	rv64v1  = decoder.MustConfig(decoder.RV64, decoder.Version1)
	rv64v2  = decoder.MustConfig(decoder.RV64, decoder.Version2)
	rv128v1 = decoder.MustConfig(decoder.RV128, decoder.Version1)
)

// decodeC decodes through both strategies and insists they agree.
func decodeC(word uint32, cfg *decoder.Config) (insts.Instruction, bool) {
	inst, ok := decoder.RVC.Decode(word, cfg)
	linear, linearOK := decoder.RVC.DecodeLinear(word, cfg)
	ExpectWithOffset(1, linear).To(Equal(inst), "linear and indexed decodes differ for %#04x", word)
	ExpectWithOffset(1, linearOK).To(Equal(ok), "linear and indexed decodes differ for %#04x", word)
	return inst, ok
}

var _ = Describe("Compressed decoding", func() {
	Describe("defined instructions", func() {
		DescribeTable("decode to their full-length equivalent",
			func(word uint32, cfg *decoder.Config, want insts.Instruction) {
				inst, ok := decodeC(word, cfg)
				Expect(ok).To(BeTrue())
				Expect(inst).To(Equal(want), "got %s", inst)
			},
			Entry("c.addi4spn x8, sp, 4", uint32(0x0040), rv64v1, insts.NewItype(insts.OpADDI, 8, insts.SP, 4)),
			Entry("c.lw x9, 4(x10)", uint32(0x4144), rv32v1, insts.NewItype(insts.OpLW, 9, 10, 4)),
			Entry("c.sw x9, 4(x10)", uint32(0xc144), rv32v1, insts.NewStype(insts.OpSW, 4, 10, 9)),
			Entry("c.ld x8, 248(x8)", uint32(0x7c60), rv64v1, insts.NewItype(insts.OpLD, 8, 8, 0xf8)),
			Entry("c.sd x8, 248(x8)", uint32(0xfc60), rv64v1, insts.NewStype(insts.OpSD, 0xf8, 8, 8)),
			Entry("c.addi x1, 1", uint32(0x0085), rv64v0, insts.NewItype(insts.OpADDI, 1, 1, 1)),
			Entry("c.addi x1, -1", uint32(0x10fd), rv64v1, insts.NewItype(insts.OpADDI, 1, 1, -1)),
			Entry("c.jal 0", uint32(0x2001), rv32v1, insts.NewUtype(insts.OpJAL, insts.RA, 0)),
			Entry("c.addiw x1, 1", uint32(0x2085), rv64v1, insts.NewItype(insts.OpADDIW, 1, 1, 1)),
			Entry("c.li x1, -1", uint32(0x50fd), rv64v1, insts.NewItype(insts.OpADDI, 1, insts.Zero, -1)),
			Entry("c.addi16sp 16", uint32(0x6141), rv64v1, insts.NewItype(insts.OpADDI, insts.SP, insts.SP, 16)),
			Entry("c.addi16sp -512", uint32(0x7101), rv64v1, insts.NewItype(insts.OpADDI, insts.SP, insts.SP, -512)),
			Entry("c.addi16sp 32", uint32(0x6105), rv32v0, insts.NewItype(insts.OpADDI, insts.SP, insts.SP, 32)),
			Entry("c.lui x1, 1", uint32(0x6085), rv64v1, insts.NewUtype(insts.OpLUI, 1, 0x1000)),
			Entry("c.lui x1, -1", uint32(0x70fd), rv64v1, insts.NewUtype(insts.OpLUI, 1, -4096)),
			Entry("c.srai x9, 1", uint32(0x8485), rv64v1, insts.NewItype(insts.OpSRAI, 9, 9, 1)),
			Entry("c.andi x8, -1", uint32(0x987d), rv64v1, insts.NewItype(insts.OpANDI, 8, 8, -1)),
			Entry("c.sub x8, x9", uint32(0x8c05), rv32v1, insts.NewRtype(insts.OpSUB, 8, 8, 9)),
			Entry("c.xor x8, x9", uint32(0x8c25), rv32v1, insts.NewRtype(insts.OpXOR, 8, 8, 9)),
			Entry("c.or x8, x9", uint32(0x8c45), rv32v1, insts.NewRtype(insts.OpOR, 8, 8, 9)),
			Entry("c.and x8, x9", uint32(0x8c65), rv32v1, insts.NewRtype(insts.OpAND, 8, 8, 9)),
			Entry("c.subw x8, x9", uint32(0x9c05), rv64v1, insts.NewRtype(insts.OpSUBW, 8, 8, 9)),
			Entry("c.addw x8, x9 on RV128", uint32(0x9c25), rv128v1, insts.NewRtype(insts.OpADDW, 8, 8, 9)),
			Entry("c.j 0", uint32(0xa001), rv64v1, insts.NewUtype(insts.OpJAL, insts.Zero, 0)),
			Entry("c.j -2", uint32(0xbffd), rv64v1, insts.NewUtype(insts.OpJAL, insts.Zero, -2)),
			Entry("c.beqz x8, 0", uint32(0xc001), rv64v1, insts.NewStype(insts.OpBEQ, 0, 8, insts.Zero)),
			Entry("c.bnez x9, -2", uint32(0xfcfd), rv64v1, insts.NewStype(insts.OpBNE, -2, 9, insts.Zero)),
			Entry("c.lwsp x1, 4(sp)", uint32(0x4092), rv64v1, insts.NewItype(insts.OpLW, 1, insts.SP, 4)),
			Entry("c.ldsp x1, 8(sp)", uint32(0x60a2), rv64v1, insts.NewItype(insts.OpLD, 1, insts.SP, 8)),
			Entry("c.jr x1", uint32(0x8082), rv64v1, insts.NewItype(insts.OpJALR, insts.Zero, 1, 0)),
			Entry("c.mv x1, x2", uint32(0x808a), rv64v1, insts.NewRtype(insts.OpADD, 1, insts.Zero, 2)),
			Entry("c.ebreak", uint32(0x9002), rv64v1, insts.Blank(insts.OpEBREAK)),
			Entry("c.jalr x1", uint32(0x9082), rv64v1, insts.NewItype(insts.OpJALR, insts.RA, 1, 0)),
			Entry("c.add x1, x2", uint32(0x908a), rv64v1, insts.NewRtype(insts.OpADD, 1, 1, 2)),
			Entry("c.swsp x1, 4(sp)", uint32(0xc206), rv64v1, insts.NewStype(insts.OpSW, 4, insts.SP, 1)),
			Entry("c.sdsp x1, 8(sp)", uint32(0xe406), rv64v1, insts.NewStype(insts.OpSD, 8, insts.SP, 1)),
		)

		It("ignores bits above 15", func() {
			low, ok := decodeC(0x0085, rv64v1)
			Expect(ok).To(BeTrue())
			high, ok := decodeC(0xabcd0085, rv64v1)
			Expect(ok).To(BeTrue())
			Expect(high).To(Equal(low))
		})
	})

	Describe("compact registers", func() {
		It("maps field value 0 to x8 and 7 to x15", func() {
			// c.lw with rd'=0, rs1'=0 and then rd'=7, rs1'=7
			inst, ok := decodeC(0x4000, rv64v1)
			Expect(ok).To(BeTrue())
			Expect(insts.Itype(inst).Rd()).To(Equal(insts.Register(8)))
			Expect(insts.Itype(inst).Rs1()).To(Equal(insts.Register(8)))

			inst, ok = decodeC(0x439c, rv64v1)
			Expect(ok).To(BeTrue())
			Expect(insts.Itype(inst).Rd()).To(Equal(insts.Register(15)))
			Expect(insts.Itype(inst).Rs1()).To(Equal(insts.Register(15)))
		})
	})

	Describe("HINT encodings", func() {
		DescribeTable("fail before version 1 and are no-ops from version 1",
			func(word uint32) {
				_, ok := decodeC(word, rv64v0)
				Expect(ok).To(BeFalse())
				_, ok = decodeC(word, rv32v0)
				Expect(ok).To(BeFalse())

				for _, cfg := range []*decoder.Config{rv32v1, rv64v1, rv64v2, rv128v1} {
					inst, ok := decodeC(word, cfg)
					Expect(ok).To(BeTrue(), "under %s", cfg)
					Expect(inst.Op()).To(Equal(insts.OpNOP), "under %s", cfg)
				}
			},
			Entry("c.addi x0, 0", uint32(0x0001)),
			Entry("c.addi x0, 1", uint32(0x0005)),
			Entry("c.addi x1, 0", uint32(0x0081)),
			Entry("c.li x0, 1", uint32(0x4005)),
			Entry("c.lui x0, 1", uint32(0x6005)),
			Entry("c.slli x0, 1", uint32(0x0006)),
			Entry("c.slli x1, 0", uint32(0x0082)),
			Entry("c.mv x0, x2", uint32(0x800a)),
			Entry("c.add x0, x2", uint32(0x900a)),
		)

		It("are distinguishable from a real addi", func() {
			inst, ok := decodeC(0x0001, rv64v1)
			Expect(ok).To(BeTrue())
			Expect(inst).To(Equal(insts.Nop()))
			Expect(inst.Op()).NotTo(Equal(insts.OpADDI))
		})
	})

	Describe("reserved encodings", func() {
		DescribeTable("fail under every configuration",
			func(word uint32) {
				for _, cfg := range []*decoder.Config{rv32v0, rv32v1, rv64v0, rv64v1, rv64v2, rv128v1} {
					_, ok := decodeC(word, cfg)
					Expect(ok).To(BeFalse(), "under %s", cfg)
				}
			},
			Entry("c.addi4spn with nzuimm=0", uint32(0x0000)),
			Entry("c.addi4spn x9 with nzuimm=0", uint32(0x0004)),
			Entry("c.addi16sp 0", uint32(0x6101)),
			Entry("c.lui x1, 0", uint32(0x6081)),
			Entry("c.lui x0, 0", uint32(0x6001)),
			Entry("c.lwsp x0", uint32(0x4002)),
			Entry("c.jr x0", uint32(0x8002)),
			Entry("CA with funct2=10 and bit 12 set", uint32(0x9c45)),
			Entry("CA with funct2=11 and bit 12 set", uint32(0x9c65)),
		)
	})

	Describe("width gating", func() {
		DescribeTable("64/128-bit only instructions fail on RV32",
			func(word uint32, op insts.Opcode) {
				_, ok := decodeC(word, rv32v1)
				Expect(ok).To(BeFalse())

				for _, cfg := range []*decoder.Config{rv64v1, rv128v1} {
					inst, ok := decodeC(word, cfg)
					Expect(ok).To(BeTrue(), "under %s", cfg)
					Expect(inst.Op()).To(Equal(op), "under %s", cfg)
				}
			},
			Entry("c.ld", uint32(0x7c60), insts.OpLD),
			Entry("c.sd", uint32(0xfc60), insts.OpSD),
			Entry("c.ldsp", uint32(0x60a2), insts.OpLD),
			Entry("c.sdsp", uint32(0xe406), insts.OpSD),
			Entry("c.subw", uint32(0x9c05), insts.OpSUBW),
			Entry("c.addw", uint32(0x9c25), insts.OpADDW),
		)

		It("decodes the shared c.jal/c.addiw encoding by width", func() {
			inst, ok := decodeC(0x2085, rv32v1)
			Expect(ok).To(BeTrue())
			Expect(inst.Op()).To(Equal(insts.OpJAL))
			Expect(insts.Utype(inst).Rd()).To(Equal(insts.RA))

			inst, ok = decodeC(0x2085, rv64v1)
			Expect(ok).To(BeTrue())
			Expect(inst.Op()).To(Equal(insts.OpADDIW))
		})

		It("rejects c.addiw and c.ldsp with rd=0", func() {
			_, ok := decodeC(0x2001, rv64v1)
			Expect(ok).To(BeFalse())
			_, ok = decodeC(0x6022, rv64v1)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("shift amounts", func() {
		It("masks c.slli, c.srli and c.srai amounts to the register width", func() {
			for _, tc := range []struct {
				word uint32
				op   insts.Opcode
			}{
				{0x1082, insts.OpSLLI}, // c.slli x1, 32
				{0x9001, insts.OpSRLI}, // c.srli x8, 32
				{0x9401, insts.OpSRAI}, // c.srai x8, 32
			} {
				inst, ok := decodeC(tc.word, rv64v1)
				Expect(ok).To(BeTrue())
				Expect(inst.Op()).To(Equal(tc.op))
				Expect(insts.Itype(inst).Imm()).To(Equal(int32(32)))

				inst, ok = decodeC(tc.word, rv32v1)
				Expect(ok).To(BeTrue())
				Expect(insts.Itype(inst).Imm()).To(Equal(int32(0)))
			}
		})
	})
})
