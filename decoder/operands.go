package decoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedOperandSpec is returned when an operand specification can't
// be parsed.
var ErrMalformedOperandSpec = errors.New("decoder: malformed operand spec")

// OperandStep is one "mask, then shift" operation of an operand decoding.
// The results of all steps are ORed together to produce the operand value.
type OperandStep struct {
	Mask       bits32
	RightShift int
}

func (s OperandStep) String() string {
	switch {
	case s.RightShift == 0:
		return fmt.Sprintf("(inst & %s)", s.Mask.String())
	case s.RightShift < 0:
		return fmt.Sprintf("(inst & %s) << %d", s.Mask.String(), -s.RightShift)
	default:
		return fmt.Sprintf("(inst & %s) >> %d", s.Mask.String(), s.RightShift)
	}
}

func (s OperandStep) apply(word uint32) uint32 {
	v := word & uint32(s.Mask)
	if s.RightShift < 0 {
		return v << uint(-s.RightShift)
	}
	return v >> uint(s.RightShift)
}

// OperandSpec describes how an operand is gathered from an instruction
// word, possibly from several scattered bit ranges.
type OperandSpec struct {
	Steps []OperandStep
	// Width is the number of bits in the assembled value. Its top bit is the
	// sign bit for DecodeSigned.
	Width uint
}

// Decode gathers the operand from word without sign extension.
func (o OperandSpec) Decode(word uint32) uint32 {
	var ret uint32
	for _, step := range o.Steps {
		ret |= step.apply(word)
	}
	return ret
}

// DecodeSigned gathers the operand from word and sign-extends it from bit
// Width-1.
func (o OperandSpec) DecodeSigned(word uint32) int32 {
	shift := 32 - o.Width
	return int32(o.Decode(word)<<shift) >> shift
}

// ParseOperandSpec deals with strings like these from the riscv-meta
// "operands" file and normalizes them to a sequence of "mask, then shift"
// operations:
//
//	11:7
//	12[5],6:2[4:0]
//	12:5[5:4|9:6|2|3]
//
// A bare range is a right-justified field. A bracketed range lists, from
// the most significant source bit downward, where each group of source bits
// lands in the result.
func ParseOperandSpec(raw string) (OperandSpec, error) {
	var ret OperandSpec
	for _, rawPart := range strings.Split(raw, ",") {
		brack := strings.IndexByte(rawPart, '[')
		switch {
		case brack == -1:
			top, bottom, err := parseBitRange(rawPart)
			if err != nil {
				return OperandSpec{}, fmt.Errorf("%w: %q: %s", ErrMalformedOperandSpec, raw, err)
			}
			ret.Steps = append(ret.Steps, OperandStep{
				Mask:       rangeMask(top, bottom),
				RightShift: int(bottom),
			})
			ret.Width = max(ret.Width, top-bottom+1)

		default:
			// A single source range can be split over several non-consecutive
			// ranges of the result, so each destination group becomes its own
			// step.
			rawSrc, rawDests := partition(rawPart, "[")
			if !strings.HasSuffix(rawDests, "]") {
				return OperandSpec{}, fmt.Errorf("%w: %q: unterminated bracket", ErrMalformedOperandSpec, raw)
			}
			rawDests = rawDests[:len(rawDests)-1]

			srcTop, srcBottom, err := parseBitRange(rawSrc)
			if err != nil {
				return OperandSpec{}, fmt.Errorf("%w: %q: %s", ErrMalformedOperandSpec, raw, err)
			}

			next := int(srcTop)
			for _, rawConcat := range strings.Split(rawDests, "|") {
				destTop, destBottom, err := parseBitRange(rawConcat)
				if err != nil {
					return OperandSpec{}, fmt.Errorf("%w: %q: %s", ErrMalformedOperandSpec, raw, err)
				}
				bottom := next - int(destTop-destBottom)
				if bottom < int(srcBottom) {
					return OperandSpec{}, fmt.Errorf("%w: %q: destination wider than source", ErrMalformedOperandSpec, raw)
				}

				ret.Steps = append(ret.Steps, OperandStep{
					Mask:       rangeMask(uint(next), uint(bottom)),
					RightShift: bottom - int(destBottom),
				})
				ret.Width = max(ret.Width, destTop+1)

				// The next concat picks up where this one left off.
				next = bottom - 1
			}
			if next+1 != int(srcBottom) {
				return OperandSpec{}, fmt.Errorf("%w: %q: source and destination widths differ", ErrMalformedOperandSpec, raw)
			}
		}
	}
	return ret, nil
}

// MustParseOperandSpec is like ParseOperandSpec but panics on error.
func MustParseOperandSpec(raw string) OperandSpec {
	spec, err := ParseOperandSpec(raw)
	if err != nil {
		panic(err)
	}
	return spec
}

func parseBitRange(raw string) (top, bottom uint, err error) {
	rawTop, rawBottom := partition(raw, ":")
	if rawBottom == "" {
		rawBottom = rawTop
	}
	t, err := strconv.ParseUint(rawTop, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseUint(rawBottom, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if t > 31 || b > t {
		return 0, 0, fmt.Errorf("invalid bit range %q", raw)
	}
	return uint(t), uint(b), nil
}
