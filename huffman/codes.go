package huffman

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/katalvlaran/symindex/freq"
)

// CodeMap maps each symbol to its codeword, written as a string of '0'/'1'.
type CodeMap map[string]string

// frame is one pending stack entry of the code walk.
type frame struct {
	node   *Node
	prefix string
}

// BuildCodes assigns a codeword to every leaf under root.
// Left descents append '0', right descents append '1'. A tree that is a
// single leaf gets the code "0", since the empty string is not a codeword.
// The walk uses an explicit stack, so depth is bounded by memory only.
func BuildCodes(root *Node) (CodeMap, error) {
	if root == nil {
		return nil, ErrNilTree
	}
	codes := make(CodeMap)
	if root.leaf {
		codes[root.symbol] = "0"
		return codes, nil
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := top.node
		if n.left == nil && n.right == nil {
			codes[n.symbol] = top.prefix
			continue
		}
		// right first so the left subtree is finished first
		if n.right != nil {
			stack = append(stack, frame{node: n.right, prefix: top.prefix + "1"})
		}
		if n.left != nil {
			stack = append(stack, frame{node: n.left, prefix: top.prefix + "0"})
		}
	}
	return codes, nil
}

// Symbols returns the mapped symbols in ascending order.
func (c CodeMap) Symbols() []string {
	out := make([]string, 0, len(c))
	for sym := range c {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// IsPrefixFree reports whether no codeword is a prefix of another.
// Empty or repeated codewords make a map ambiguous and yield false.
func (c CodeMap) IsPrefixFree() bool {
	words := make([]string, 0, len(c))
	for _, w := range c {
		if w == "" {
			return false
		}
		words = append(words, w)
	}
	sort.Strings(words)
	// after sorting, a prefix always sorts directly before one of its extensions
	for i := 1; i < len(words); i++ {
		if strings.HasPrefix(words[i], words[i-1]) {
			return false
		}
	}
	return true
}

// WeightedLength returns Σ count(sym)·len(code(sym)) over the table, the
// encoded size in bits of the tokens t was counted from.
//
// A symbol of t missing from c is ErrUnknownSymbol. A product or sum past
// math.MaxUint64 is ErrFrequencyOverflow; the result never wraps.
func (c CodeMap) WeightedLength(t *freq.Table) (uint64, error) {
	var total uint64
	for _, e := range t.Entries() {
		code, ok := c[e.Symbol]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, e.Symbol)
		}
		hi, bitsFor := bits.Mul64(e.Count, uint64(len(code)))
		sum, carry := bits.Add64(total, bitsFor, 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: weighted length at %q", ErrFrequencyOverflow, e.Symbol)
		}
		total = sum
	}
	return total, nil
}

// MaxLen returns the length of the longest codeword.
func (c CodeMap) MaxLen() int {
	longest := 0
	for _, w := range c {
		if len(w) > longest {
			longest = len(w)
		}
	}
	return longest
}
