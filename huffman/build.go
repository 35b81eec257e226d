package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/katalvlaran/symindex/freq"
)

// BuildTree builds the merge tree for t and returns its root.
//
// Steps:
//  1. Reject an empty table (ErrEmptyInput).
//  2. A single entry is returned as a lone leaf; nothing is merged.
//  3. Seed the heap with one leaf per entry, sequence = table rank.
//  4. Pop two, merge (first popped on the left), push; repeat until one remains.
//
// OnMerge is invoked after each merge with a 1-based step number.
//
// Edge cases:
//   - nil or empty t: ErrEmptyInput
//   - zero counts are legal; such symbols still get a codeword
//   - an internal frequency past math.MaxUint64: ErrFrequencyOverflow,
//     wrapped with the failing step
//
// Complexity: O(k log k) time and O(k) space for k distinct symbols.
func BuildTree(t *freq.Table, opts ...Option) (*Node, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	entries := t.Entries()
	if len(entries) == 1 {
		return NewLeaf(entries[0].Symbol, entries[0].Count), nil
	}

	h := candidateHeap{list: make([]candidate, 0, len(entries))}
	for rank, e := range entries {
		h.list = append(h.list, candidate{node: NewLeaf(e.Symbol, e.Count), seq: rank})
	}
	h.Init()

	nextSeq := len(entries)
	for step := 1; h.Len() > 1; step++ {
		a := heap.Pop(&h).(candidate)
		b := heap.Pop(&h).(candidate)

		merged, err := merge(a.node, b.node)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		heap.Push(&h, candidate{node: merged, seq: nextSeq})
		nextSeq++

		o.OnMerge(MergeStep{Step: step, Left: a.node, Right: b.node, Merged: merged})
	}

	return heap.Pop(&h).(candidate).node, nil
}

// merge joins two subtrees under a new internal node.
func merge(left, right *Node) (*Node, error) {
	assert.Assert(left != nil && right != nil, "huffman: merge of nil subtree")
	sum := left.freq + right.freq
	if sum < left.freq {
		return nil, fmt.Errorf("%w: %d + %d", ErrFrequencyOverflow, left.freq, right.freq)
	}
	n := &Node{freq: sum, left: left, right: right}
	assert.Assertf(n.freq == n.left.freq+n.right.freq, "huffman: internal frequency %d != %d+%d", n.freq, left.freq, right.freq)
	return n, nil
}

// type candidate + type candidateHeap {{{

type candidate struct {
	node *Node
	seq  int
}

type candidateHeap struct {
	list []candidate
}

func (h *candidateHeap) Init() {
	heap.Init(h)
}

func (h *candidateHeap) Len() int {
	return len(h.list)
}

func (h *candidateHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *candidateHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *candidateHeap) Push(x interface{}) {
	h.list = append(h.list, x.(candidate))
}

func (h *candidateHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = candidate{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*candidateHeap)(nil)

// }}}
