package decoder

import (
	"io"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-decode/insts"
)

// Table is the ordered instruction list of one extension together with an
// index over it. The index is built on first use and is read-only after
// that, so a Table may be used from any number of goroutines.
//
// The list order matters: a word is decoded by the first entry that matches
// it, whether or not that entry's builder then accepts it.
type Table struct {
	ext    Extension
	length int
	list   []InstructionInfo
	index  func() *indexNode
	stats  IndexStats
}

// NewTable wraps list, which must not be modified afterward. length is the
// size in bytes of the words the table decodes.
func NewTable(ext Extension, length int, list []InstructionInfo) *Table {
	t := &Table{
		ext:    ext,
		length: length,
		list:   list,
	}
	t.index = sync.OnceValue(func() *indexNode {
		root, stats := buildIndex(t.list)
		t.stats = stats
		log.WithFields(logrus.Fields{
			"extension":    t.ext.String(),
			"entries":      stats.Entries,
			"nodes":        stats.Nodes,
			"leaves":       stats.Leaves,
			"depth":        stats.MaxDepth,
			"largest_leaf": stats.LargestLeaf,
		}).Debug("built decode index")
		return root
	})
	return t
}

func (t *Table) Extension() Extension { return t.ext }

// Length is the size in bytes of the instructions in the table: 2 for the
// compressed extension and 4 otherwise.
func (t *Table) Length() int { return t.length }

// List returns a copy of the table's entries, in decode order.
func (t *Table) List() []InstructionInfo {
	return append([]InstructionInfo(nil), t.list...)
}

// Stats builds the index if necessary and describes it.
func (t *Table) Stats() IndexStats {
	t.index()
	return t.stats
}

// Decode decodes word using the table's index. It returns false if no
// entry matches, or if the matching entry's encoding is reserved or not
// available under cfg.
func (t *Table) Decode(word uint32, cfg *Config) (insts.Instruction, bool) {
	return t.build(t.index().lookup(t.list, word), word, cfg)
}

// DecodeLinear is like Decode, but finds the entry by scanning the whole
// list. It always gives the same result as Decode.
func (t *Table) DecodeLinear(word uint32, cfg *Config) (insts.Instruction, bool) {
	return t.build(t.linear(word), word, cfg)
}

// Lookup returns the entry that Decode would use for word.
func (t *Table) Lookup(word uint32) (InstructionInfo, bool) {
	return t.entry(t.index().lookup(t.list, word))
}

// LookupLinear returns the entry that DecodeLinear would use for word.
func (t *Table) LookupLinear(word uint32) (InstructionInfo, bool) {
	return t.entry(t.linear(word))
}

// Dump writes a readable description of the table and its index shape to
// w.
func (t *Table) Dump(w io.Writer) {
	type entry struct {
		Name   string
		Mask   bits32
		Match  bits32
		Opcode insts.Opcode
	}
	entries := make([]entry, len(t.list))
	for i, e := range t.list {
		entries[i] = entry{e.Name, bits32(e.Mask), bits32(e.Match), e.Opcode}
	}
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	cfg.Fdump(w, t.ext, t.Stats(), entries)
}

func (t *Table) linear(word uint32) int {
	for i := range t.list {
		if t.list[i].Matches(word) {
			return i
		}
	}
	return -1
}

func (t *Table) entry(i int) (InstructionInfo, bool) {
	if i < 0 {
		return InstructionInfo{}, false
	}
	return t.list[i], true
}

func (t *Table) build(i int, word uint32, cfg *Config) (insts.Instruction, bool) {
	if i < 0 {
		return 0, false
	}
	e := &t.list[i]
	return e.Builder(word, e.Opcode, cfg)
}
