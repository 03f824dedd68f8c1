package decoder

import (
	"fmt"

	"github.com/apparentlymart/riscv-decode/insts"
)

type bits32 uint32

func (v bits32) String() string {
	return fmt.Sprintf("0b%032b", uint32(v))
}

func rangeMask(top, bottom uint) bits32 {
	return bits32((1 << (top + 1)) - (1 << bottom))
}

// Extract returns bits [lower, lower+length) of word, right-justified and
// then shifted left by shift. lower+length and length+shift must not
// exceed 32.
func Extract(word uint32, lower, length, shift uint) uint32 {
	return ((word >> lower) & (1<<length - 1)) << shift
}

// ExtractSigned is like Extract, but treats bit lower+length-1 as a sign
// bit and replicates it upward before the final shift.
func ExtractSigned(word uint32, lower, length, shift uint) int32 {
	return int32(word) << (32 - lower - length) >> (32 - length) << shift
}

func rd(word uint32) insts.Register {
	return insts.Register(Extract(word, 7, 5, 0))
}

func rs1(word uint32) insts.Register {
	return insts.Register(Extract(word, 15, 5, 0))
}

func rs2(word uint32) insts.Register {
	return insts.Register(Extract(word, 20, 5, 0))
}

func utypeImmediate(word uint32) int32 {
	return ExtractSigned(word, 12, 20, 12)
}

func itypeImmediate(word uint32) int32 {
	return ExtractSigned(word, 20, 12, 0)
}

// inst[31|7|30:25|11:8] => imm[12|11|10:5|4:1]
func btypeImmediate(word uint32) int32 {
	return int32(Extract(word, 8, 4, 1)|
		Extract(word, 25, 6, 5)|
		Extract(word, 7, 1, 11)) |
		ExtractSigned(word, 31, 1, 12)
}

// inst[31|30:21|20|19:12] => imm[20|10:1|11|19:12]
func jtypeImmediate(word uint32) int32 {
	return int32(Extract(word, 21, 10, 1)|
		Extract(word, 20, 1, 11)|
		Extract(word, 12, 8, 12)) |
		ExtractSigned(word, 31, 1, 20)
}

// inst[31:25|11:7] => imm[11:5|4:0]
func stypeImmediate(word uint32) int32 {
	return int32(Extract(word, 7, 5, 0)) | ExtractSigned(word, 25, 7, 5)
}
