package decoder

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/apparentlymart/riscv-decode/insts"
)

// overlapExceptions lists entry pairs whose encodings intentionally
// overlap. The first of each pair must come first in its table.
var overlapExceptions = map[[2]string]bool{
	{"c.addi16sp", "c.lui"}: true,
}

func overlaps(a, b InstructionInfo) bool {
	return (a.Match^b.Match)&a.Mask&b.Mask == 0
}

func TestTablesDisjoint(t *testing.T) {
	for _, table := range []*Table{RVI, RVM, RVB, RVC, RVV} {
		list := table.List()
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				if !overlaps(list[i], list[j]) {
					continue
				}
				if overlapExceptions[[2]string{list[i].Name, list[j].Name}] {
					continue
				}
				t.Errorf("%s: %s and %s overlap", table.Extension(), list[i], list[j])
			}
		}
	}
}

// The 32-bit tables are combined by Decoder, which tries them in order, so
// no two of them may claim the same word either.
func TestStandardTablesMutuallyDisjoint(t *testing.T) {
	tables := []*Table{RVI, RVM, RVB, RVV}
	for i, a := range tables {
		for _, b := range tables[i+1:] {
			for _, ea := range a.List() {
				for _, eb := range b.List() {
					if overlaps(ea, eb) {
						t.Errorf("%s %s overlaps %s %s", a.Extension(), ea, b.Extension(), eb)
					}
				}
			}
		}
	}
}

func TestOverlapExceptionsOrdered(t *testing.T) {
	for pair := range overlapExceptions {
		first, second := -1, -1
		for i, e := range RVC.List() {
			switch e.Name {
			case pair[0]:
				first = i
			case pair[1]:
				second = i
			}
		}
		if first < 0 || second < 0 || first > second {
			t.Errorf("%s must precede %s (positions %d, %d)", pair[0], pair[1], first, second)
		}
	}
}

func checkEquivalent(t *testing.T, table *Table, word uint32, cfgs []*Config) bool {
	t.Helper()
	i, iok := table.Lookup(word)
	l, lok := table.LookupLinear(word)
	if iok != lok || i.Name != l.Name || i.Mask != l.Mask || i.Match != l.Match {
		t.Errorf("%s %#08x: index chose %s (%t), linear chose %s (%t)", table.Extension(), word, i, iok, l, lok)
		return false
	}
	for _, cfg := range cfgs {
		inst, ok := table.Decode(word, cfg)
		linear, linearOK := table.DecodeLinear(word, cfg)
		if inst != linear || ok != linearOK {
			t.Errorf("%s %#08x under %s: results differ:\n%s", table.Extension(), word, cfg, spew.Sdump(inst, ok, linear, linearOK))
			return false
		}
	}
	return true
}

func TestIndexMatchesLinearCompressed(t *testing.T) {
	cfgs := allConfigs()
	for w := uint32(0); w <= 0xffff; w++ {
		if !checkEquivalent(t, RVC, w, cfgs) {
			return
		}
	}
}

func TestIndexMatchesLinearStandard(t *testing.T) {
	cfgs := allConfigs()
	rng := rand.New(rand.NewPCG(1, 2))
	for _, table := range []*Table{RVI, RVM, RVB, RVV} {
		for _, e := range table.List() {
			// The entry's own pattern, with the don't-care bits randomized,
			// then with single bits of the pattern flipped to reach its
			// neighbours.
			for n := 0; n < 64; n++ {
				w := e.Match | rng.Uint32()&^e.Mask
				if !checkEquivalent(t, table, w, cfgs) {
					return
				}
				flipped := w ^ 1<<rng.IntN(32)
				if !checkEquivalent(t, table, flipped, cfgs) {
					return
				}
			}
		}
		for n := 0; n < 1<<16; n++ {
			if !checkEquivalent(t, table, rng.Uint32(), cfgs[:1]) {
				return
			}
		}
	}
}

// Synthetic tables with arbitrary, heavily overlapping encodings exercise
// index shapes the real tables don't produce.
func TestIndexMatchesLinearRandomTables(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	cfg := MustConfig(RV64, Version1)
	for n := 0; n < 50; n++ {
		list := make([]InstructionInfo, 1+rng.IntN(60))
		for i := range list {
			// Confine the interesting bits to the low byte so that random
			// words match often.
			mask := rng.Uint32() & 0xff
			if rng.IntN(4) == 0 {
				mask |= rng.Uint32()
			}
			list[i] = InstructionInfo{
				Name:    "synthetic",
				Mask:    mask,
				Match:   rng.Uint32() & mask,
				Opcode:  insts.Opcode(i),
				Builder: blankBuilder,
			}
		}
		table := NewTable(ExtInvalid, 4, list)
		for k := 0; k < 4096; k++ {
			w := rng.Uint32()
			if k%2 == 0 {
				e := list[rng.IntN(len(list))]
				w = e.Match | w&^e.Mask
			}
			inst, ok := table.Decode(w, cfg)
			linear, linearOK := table.DecodeLinear(w, cfg)
			if inst != linear || ok != linearOK {
				t.Fatalf("table %d word %#08x: index gave %s (%t), linear gave %s (%t)\n%s",
					n, w, inst, ok, linear, linearOK, spew.Sdump(list))
			}
		}
	}
}

func TestIndexStats(t *testing.T) {
	for _, table := range []*Table{RVI, RVM, RVB, RVC, RVV} {
		s := table.Stats()
		if s.Entries != len(table.List()) {
			t.Errorf("%s: %d entries indexed, table has %d", table.Extension(), s.Entries, len(table.List()))
		}
		if s.Leaves == 0 || s.Nodes < s.Leaves {
			t.Errorf("%s: malformed stats %+v", table.Extension(), s)
		}
		if s.LargestLeaf > len(table.List()) {
			t.Errorf("%s: leaf larger than the table: %+v", table.Extension(), s)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	table := NewTable(ExtInvalid, 4, nil)
	if _, ok := table.Decode(0x00000013, MustConfig(RV64, Version1)); ok {
		t.Error("empty table decoded a word")
	}
	if s := table.Stats(); s.Nodes != 1 || s.Leaves != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestListIsCopy(t *testing.T) {
	list := RVM.List()
	list[0].Name = "changed"
	if RVM.List()[0].Name == "changed" {
		t.Error("List returned the table's own storage")
	}
}

func TestIndexBuildIsLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	table := NewTable(ExtM, 4, rvmInstructions)
	table.Stats()
	table.Stats()

	if got := len(hook.AllEntries()); got != 1 {
		t.Fatalf("got %d log entries, want 1", got)
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.DebugLevel || entry.Message != "built decode index" {
		t.Errorf("unexpected log entry %s: %q", entry.Level, entry.Message)
	}
	if entry.Data["extension"] != "M" || entry.Data["entries"] != len(rvmInstructions) {
		t.Errorf("unexpected fields %v", entry.Data)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	RVC.Dump(&buf)
	out := buf.String()
	for _, want := range []string{"c.addi16sp", "LargestLeaf", "0b00000000000000001110111110000011"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump doesn't mention %q:\n%s", want, out)
		}
	}
}

func benchmarkWords(table *Table, n int) []uint32 {
	rng := rand.New(rand.NewPCG(5, 6))
	list := table.List()
	words := make([]uint32, n)
	for i := range words {
		e := list[rng.IntN(len(list))]
		words[i] = e.Match | rng.Uint32()&^e.Mask
		if table.Length() == 2 {
			words[i] &= 0xffff
		}
	}
	return words
}

func benchmarkDecode(b *testing.B, table *Table, linear bool) {
	cfg := MustConfig(RV64, Version1)
	words := benchmarkWords(table, 4096)
	table.Stats()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		if linear {
			table.DecodeLinear(w, cfg)
		} else {
			table.Decode(w, cfg)
		}
	}
}

func BenchmarkDecodeLinear(b *testing.B) {
	for _, table := range []*Table{RVI, RVM, RVB, RVC, RVV} {
		b.Run(table.Extension().String(), func(b *testing.B) { benchmarkDecode(b, table, true) })
	}
}

func BenchmarkDecodeIndexed(b *testing.B) {
	for _, table := range []*Table{RVI, RVM, RVB, RVC, RVV} {
		b.Run(table.Extension().String(), func(b *testing.B) { benchmarkDecode(b, table, false) })
	}
}
