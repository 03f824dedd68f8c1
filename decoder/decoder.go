// Package decoder turns raw RISC-V instruction words into insts.Instruction
// values.
//
// Each supported extension has a Table (RVI, RVM, RVB, RVC, RVV) holding
// its encodings in decode order. A Table can be consulted directly, or
// several can be combined into a Decoder for a particular hart
// configuration.
package decoder

import (
	"errors"
	"fmt"

	"github.com/apparentlymart/riscv-decode/insts"
)

// Decoder decodes instruction words for one configuration and a set of
// extensions.
type Decoder struct {
	cfg        *Config
	compressed []*Table
	standard   []*Table
}

// NewDecoder returns a decoder trying tables in the order given. Tables of
// 2-byte instructions are consulted for compressed words and all others for
// 32-bit words.
func NewDecoder(cfg *Config, tables ...*Table) (*Decoder, error) {
	if cfg == nil {
		return nil, errors.New("decoder: nil configuration")
	}
	d := &Decoder{cfg: cfg}
	for _, t := range tables {
		switch t.Length() {
		case 2:
			d.compressed = append(d.compressed, t)
		case 4:
			d.standard = append(d.standard, t)
		default:
			return nil, fmt.Errorf("decoder: table %s has unsupported instruction length %d", t.Extension(), t.Length())
		}
	}
	return d, nil
}

// Config returns the decoder's configuration.
func (d *Decoder) Config() *Config { return d.cfg }

// Decode decodes the instruction at the start of word. Words whose two low
// bits are not both set are compressed and only their low 16 bits are
// considered. It returns the instruction and its length in bytes; ok is
// false if no table holds a legal encoding for the word.
func (d *Decoder) Decode(word uint32) (inst insts.Instruction, length int, ok bool) {
	tables, length := d.standard, 4
	if IsCompressed(word) {
		tables, length = d.compressed, 2
		word &= 0xffff
	}
	// The first table with a matching entry decides, as within a table.
	for _, t := range tables {
		if i := t.index().lookup(t.list, word); i >= 0 {
			inst, ok = t.build(i, word, d.cfg)
			return inst, length, ok
		}
	}
	return 0, length, false
}

// IsCompressed reports whether word begins with a 16-bit instruction.
func IsCompressed(word uint32) bool {
	return word&0x3 != 0x3
}
