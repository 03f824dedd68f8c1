package decoder

import "math/bits"

const (
	// maxKeyBits bounds the fan-out of a single index node to 256 slots.
	maxKeyBits = 8
	// Nodes with this many entries or fewer are scanned directly.
	maxLeafEntries = 2
)

// keyRun moves word bits [lower, lower+width) to slot bits [pos,
// pos+width).
type keyRun struct {
	lower, width, pos uint8
}

// indexNode is one node of a decision trie over a table's entries. An inner
// node selects a child by gathering the key bits of the word; a leaf holds
// entry positions in table order and is scanned with the full predicate.
//
// Every key bit is covered by the mask of every entry below the node, so an
// entry that matches a word always lies in the child the word selects.
// Leaves preserve table order, which makes the first match in the leaf the
// first match in the whole table.
type indexNode struct {
	key      []keyRun
	children []*indexNode
	entries  []int
}

func (n *indexNode) slot(word uint32) uint32 {
	var slot uint32
	for _, r := range n.key {
		slot |= Extract(word, uint(r.lower), uint(r.width), uint(r.pos))
	}
	return slot
}

// lookup returns the position of the first entry in list that matches
// word, or -1.
func (n *indexNode) lookup(list []InstructionInfo, word uint32) int {
	for n.children != nil {
		n = n.children[n.slot(word)]
		if n == nil {
			return -1
		}
	}
	for _, i := range n.entries {
		if list[i].Matches(word) {
			return i
		}
	}
	return -1
}

// IndexStats describes the shape of a table's index.
type IndexStats struct {
	Entries     int
	Nodes       int
	Leaves      int
	MaxDepth    int
	LargestLeaf int
}

func buildIndex(list []InstructionInfo) (*indexNode, IndexStats) {
	stats := IndexStats{Entries: len(list)}
	all := make([]int, len(list))
	for i := range all {
		all[i] = i
	}
	root := buildNode(list, all, 0, 0, &stats)
	return root, stats
}

func buildNode(list []InstructionInfo, entries []int, used uint32, depth int, stats *IndexStats) *indexNode {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	key := discriminatingBits(list, entries, used)
	if len(entries) <= maxLeafEntries || key == 0 {
		stats.Leaves++
		stats.LargestLeaf = max(stats.LargestLeaf, len(entries))
		return &indexNode{entries: entries}
	}

	n := &indexNode{key: keyRuns(key)}
	buckets := make([][]int, 1<<bits.OnesCount32(key))
	for _, i := range entries {
		s := n.slot(list[i].Match)
		buckets[s] = append(buckets[s], i)
	}
	n.children = make([]*indexNode, len(buckets))
	for s, b := range buckets {
		if len(b) != 0 {
			n.children[s] = buildNode(list, b, used|key, depth+1, stats)
		}
	}
	return n
}

// discriminatingBits returns up to maxKeyBits of the lowest bits that every
// entry's mask covers, that haven't been used by an ancestor, and on which
// the entries' match values disagree.
func discriminatingBits(list []InstructionInfo, entries []int, used uint32) uint32 {
	common := ^used
	var ones, zeros uint32
	for _, i := range entries {
		common &= list[i].Mask
		ones |= list[i].Match
		zeros |= ^list[i].Match
	}
	key := common & ones & zeros
	for bits.OnesCount32(key) > maxKeyBits {
		key &^= 1 << (31 - bits.LeadingZeros32(key))
	}
	return key
}

// keyRuns splits key into runs of contiguous bits, packed from slot bit 0
// upward.
func keyRuns(key uint32) []keyRun {
	var runs []keyRun
	var pos uint8
	for key != 0 {
		lower := bits.TrailingZeros32(key)
		width := bits.TrailingZeros32(^(key >> lower))
		runs = append(runs, keyRun{lower: uint8(lower), width: uint8(width), pos: pos})
		pos += uint8(width)
		key &^= uint32(rangeMask(uint(lower+width-1), uint(lower)))
	}
	return runs
}
