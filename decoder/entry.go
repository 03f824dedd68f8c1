package decoder

import (
	"fmt"

	"github.com/apparentlymart/riscv-decode/insts"
)

// Builder assembles the instruction for a word already known to match its
// table entry. It returns false for encodings that are reserved, or that
// are not available under cfg.
type Builder func(word uint32, op insts.Opcode, cfg *Config) (insts.Instruction, bool)

// InstructionInfo is one entry of a decode table: a word whose bits under
// Mask equal Match is decoded by Builder, which is passed Opcode.
type InstructionInfo struct {
	Name    string
	Mask    uint32
	Match   uint32
	Opcode  insts.Opcode
	Builder Builder
}

// Matches reports whether word belongs to this entry's encoding.
func (i InstructionInfo) Matches(word uint32) bool {
	return word&i.Mask == i.Match
}

func (i InstructionInfo) String() string {
	return fmt.Sprintf("%s mask=%s match=%s", i.Name, bits32(i.Mask), bits32(i.Match))
}

// op declares a table entry from a riscv-meta match specification. Tables
// are package-level data, so a malformed spec panics during initialization.
func op(name, spec string, opcode insts.Opcode, builder Builder) InstructionInfo {
	mask, match, err := ParseMatchSpec(spec)
	if err != nil {
		panic(fmt.Sprintf("decode table entry %s: %s", name, err))
	}
	return InstructionInfo{
		Name:    name,
		Mask:    mask,
		Match:   match,
		Opcode:  opcode,
		Builder: builder,
	}
}
