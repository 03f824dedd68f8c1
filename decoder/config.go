package decoder

import (
	"errors"
	"fmt"
)

// Extension versions. Version0 predates the ratified HINT encodings: under
// it every HINT decodes as illegal.
const (
	Version0 uint32 = 0
	Version1 uint32 = 1
	Version2 uint32 = 2
)

// ErrUnsupportedXLEN is returned by NewConfig for register widths other
// than 32, 64 or 128 bits.
var ErrUnsupportedXLEN = errors.New("decoder: unsupported register width")

// Config carries the register width and extension version every builder
// needs to resolve width- and version-dependent encodings. A Config is
// immutable and may be shared by any number of concurrent decodes.
type Config struct {
	xlen      Size
	is32Bit   bool
	is64Bit   bool
	version   uint32
	shiftMask uint8
}

// NewConfig returns the configuration for the given register width and
// extension version.
func NewConfig(xlen Size, version uint32) (*Config, error) {
	if !xlen.valid() {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedXLEN, uint8(xlen))
	}
	return &Config{
		xlen:      xlen,
		is32Bit:   xlen == RV32,
		is64Bit:   xlen == RV64,
		version:   version,
		shiftMask: xlen.shiftMask(),
	}, nil
}

// MustConfig is like NewConfig but panics on an unsupported width. It is
// meant for package-level configurations.
func MustConfig(xlen Size, version uint32) *Config {
	cfg, err := NewConfig(xlen, version)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) XLEN() Size       { return c.xlen }
func (c *Config) Is32Bit() bool    { return c.is32Bit }
func (c *Config) Is64Bit() bool    { return c.is64Bit }
func (c *Config) Version() uint32  { return c.version }
func (c *Config) ShiftMask() uint8 { return c.shiftMask }

func (c *Config) String() string {
	return fmt.Sprintf("%s/v%d", c.xlen, c.version)
}

// hintsDefined reports whether HINT encodings decode to a no-op rather than
// failing.
func (c *Config) hintsDefined() bool {
	return c.version >= Version1
}
