package decoder

import "fmt"

// Extension is a single-letter RISC-V extension name.
type Extension byte

// Size is a register width (XLEN) in bits.
type Size uint8

const (
	RVInvalid Size = 0
	RV32      Size = 32
	RV64      Size = 64
	RV128     Size = 128
)

const (
	ExtInvalid Extension = 0
	ExtI       Extension = 'I' // base integer
	ExtM       Extension = 'M' // multiply and divide
	ExtB       Extension = 'B' // bit manipulation (Zba, Zbb, Zbc, Zbs)
	ExtC       Extension = 'C' // compressed
	ExtV       Extension = 'V' // vector
)

func (e Extension) String() string {
	if e == ExtInvalid {
		return "invalid"
	}
	return string(rune(e))
}

func (s Size) String() string {
	return fmt.Sprintf("RV%d", uint8(s))
}

// shiftMask is the mask applied to shift amounts for the given width: the
// amount is always less than the register width.
func (s Size) shiftMask() uint8 {
	return uint8(s) - 1
}

func (s Size) valid() bool {
	switch s {
	case RV32, RV64, RV128:
		return true
	default:
		return false
	}
}
