// Package insts defines the canonical in-memory form of a decoded RISC-V
// instruction, as consumed by an execution engine.
//
// An Instruction packs everything into a single 64-bit word:
//
//	bits  0..15  opcode
//	bits 16..23  first register field (rd, or rs1 for stores/branches)
//	bits 24..31  second register field
//	bits 32..63  immediate, or third register field plus the vector mask bit
//
// Values are constructed only through the New* functions and inspected
// through the typed views (Rtype, Itype, ...), which are plain conversions.
package insts

import "fmt"

// Register is an architectural register index.
type Register uint8

const (
	Zero Register = 0
	RA   Register = 1
	SP   Register = 2
	GP   Register = 3
	TP   Register = 4
)

// Instruction is a decoded instruction.
type Instruction uint64

const vmBit = 1 << 40

// Op returns the instruction's opcode.
func (i Instruction) Op() Opcode {
	return Opcode(i & 0xffff)
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s(%#016x)", i.Op(), uint64(i))
}

func pack(op Opcode, a, b Register, c uint32) Instruction {
	return Instruction(uint64(op) | uint64(a)<<16 | uint64(b)<<24 | uint64(c)<<32)
}

func (i Instruction) a() Register { return Register(i >> 16) }
func (i Instruction) b() Register { return Register(i >> 24) }
func (i Instruction) c() uint32   { return uint32(i >> 32) }

// Blank returns an instruction carrying only an opcode.
func Blank(op Opcode) Instruction {
	return pack(op, 0, 0, 0)
}

// Nop returns the instruction produced for HINT encodings.
func Nop() Instruction {
	return Blank(OpNOP)
}

// NewRtype builds a register-register instruction.
func NewRtype(op Opcode, rd, rs1, rs2 Register) Instruction {
	return pack(op, rd, rs1, uint32(rs2))
}

// NewItype builds a register-immediate instruction. Unsigned immediates are
// passed through unchanged as their bit pattern.
func NewItype(op Opcode, rd, rs1 Register, imm int32) Instruction {
	return pack(op, rd, rs1, uint32(imm))
}

// NewStype builds a store or branch instruction.
func NewStype(op Opcode, imm int32, rs1, rs2 Register) Instruction {
	return pack(op, rs1, rs2, uint32(imm))
}

// NewUtype builds an upper-immediate or jump instruction.
func NewUtype(op Opcode, rd Register, imm int32) Instruction {
	return pack(op, rd, 0, uint32(imm))
}

func vmFlag(vm bool) uint32 {
	if vm {
		return 1 << 8
	}
	return 0
}

// NewVVtype builds a vector-vector instruction.
func NewVVtype(op Opcode, vd, vs1, vs2 Register, vm bool) Instruction {
	return pack(op, vd, vs1, uint32(vs2)|vmFlag(vm))
}

// NewVXtype builds a vector-scalar instruction.
func NewVXtype(op Opcode, vd, rs1, vs2 Register, vm bool) Instruction {
	return pack(op, vd, rs1, uint32(vs2)|vmFlag(vm))
}

// NewVItype builds a vector-immediate instruction. Only the low five bits
// of imm are kept.
func NewVItype(op Opcode, vd, vs2 Register, imm uint32, vm bool) Instruction {
	return pack(op, vd, vs2, (imm&0x1f)<<16|vmFlag(vm))
}

// Rtype views an instruction built by NewRtype.
type Rtype Instruction

func (r Rtype) Op() Opcode    { return Instruction(r).Op() }
func (r Rtype) Rd() Register  { return Instruction(r).a() }
func (r Rtype) Rs1() Register { return Instruction(r).b() }
func (r Rtype) Rs2() Register { return Register(Instruction(r).c()) }

// Itype views an instruction built by NewItype.
type Itype Instruction

func (i Itype) Op() Opcode    { return Instruction(i).Op() }
func (i Itype) Rd() Register  { return Instruction(i).a() }
func (i Itype) Rs1() Register { return Instruction(i).b() }
func (i Itype) Imm() int32    { return int32(Instruction(i).c()) }
func (i Itype) UImm() uint32  { return Instruction(i).c() }

// Stype views an instruction built by NewStype.
type Stype Instruction

func (s Stype) Op() Opcode    { return Instruction(s).Op() }
func (s Stype) Rs1() Register { return Instruction(s).a() }
func (s Stype) Rs2() Register { return Instruction(s).b() }
func (s Stype) Imm() int32    { return int32(Instruction(s).c()) }

// Utype views an instruction built by NewUtype.
type Utype Instruction

func (u Utype) Op() Opcode   { return Instruction(u).Op() }
func (u Utype) Rd() Register { return Instruction(u).a() }
func (u Utype) Imm() int32   { return int32(Instruction(u).c()) }

// VVtype views an instruction built by NewVVtype.
type VVtype Instruction

func (v VVtype) Op() Opcode    { return Instruction(v).Op() }
func (v VVtype) Vd() Register  { return Instruction(v).a() }
func (v VVtype) Vs1() Register { return Instruction(v).b() }
func (v VVtype) Vs2() Register { return Register(Instruction(v).c()) }
func (v VVtype) VM() bool      { return Instruction(v)&vmBit != 0 }

// VXtype views an instruction built by NewVXtype.
type VXtype Instruction

func (v VXtype) Op() Opcode    { return Instruction(v).Op() }
func (v VXtype) Vd() Register  { return Instruction(v).a() }
func (v VXtype) Rs1() Register { return Instruction(v).b() }
func (v VXtype) Vs2() Register { return Register(Instruction(v).c()) }
func (v VXtype) VM() bool      { return Instruction(v)&vmBit != 0 }

// VItype views an instruction built by NewVItype.
type VItype Instruction

func (v VItype) Op() Opcode    { return Instruction(v).Op() }
func (v VItype) Vd() Register  { return Instruction(v).a() }
func (v VItype) Vs2() Register { return Instruction(v).b() }
func (v VItype) Imm() uint32   { return (Instruction(v).c() >> 16) & 0x1f }
func (v VItype) VM() bool      { return Instruction(v)&vmBit != 0 }
