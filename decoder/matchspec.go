package decoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedMatchSpec is returned when a match specification can't be
// parsed.
var ErrMalformedMatchSpec = errors.New("decoder: malformed match spec")

// ParseMatchSpec parses a whitespace-separated list of fixed-field
// constraints in riscv-meta "opcodes" notation, such as
//
//	31..25=0x20 14..12=0 6..2=0x0C 1..0=3
//
// and returns the combined mask and match bits. A single bit may be written
// as "25=1". Anything after a '#' is ignored.
func ParseMatchSpec(spec string) (mask, match uint32, err error) {
	fields := strings.Fields(trimComments(spec))
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("%w: %q is empty", ErrMalformedMatchSpec, spec)
	}
	for _, raw := range fields {
		v, m, err := parseMatchField(raw)
		if err != nil {
			return 0, 0, err
		}
		if mask&m != 0 {
			return 0, 0, fmt.Errorf("%w: %q overlaps earlier fields", ErrMalformedMatchSpec, raw)
		}
		mask |= m
		match |= v
	}
	return mask, match, nil
}

func parseMatchField(rawSpec string) (val uint32, mask uint32, err error) {
	rawRng, rawWant := partition(rawSpec, "=")
	if rawWant == "" {
		return 0, 0, fmt.Errorf("%w: %q has no value", ErrMalformedMatchSpec, rawSpec)
	}
	want, err := strconv.ParseUint(rawWant, 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %s", ErrMalformedMatchSpec, rawSpec, err)
	}
	rawEnd, rawStart := partition(rawRng, "..")
	if rawStart == "" {
		rawStart = rawEnd
	}
	start, err := strconv.ParseUint(rawStart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %s", ErrMalformedMatchSpec, rawSpec, err)
	}
	end, err := strconv.ParseUint(rawEnd, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %s", ErrMalformedMatchSpec, rawSpec, err)
	}
	if end > 31 || start > end {
		return 0, 0, fmt.Errorf("%w: %q has an invalid bit range", ErrMalformedMatchSpec, rawSpec)
	}
	if want>>(end-start+1) != 0 {
		return 0, 0, fmt.Errorf("%w: value in %q does not fit in its bits", ErrMalformedMatchSpec, rawSpec)
	}
	return uint32(want << start), uint32(rangeMask(uint(end), uint(start))), nil
}

func trimComments(line string) string {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return line
	}
	return line[:hash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
