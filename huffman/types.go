package huffman

import (
	"errors"
)

// Sentinel errors for tree construction and coding.
var (
	// ErrEmptyInput is returned by BuildTree for a nil or empty table.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrFrequencyOverflow is returned when merged frequencies exceed uint64.
	ErrFrequencyOverflow = errors.New("huffman: frequency sum overflows uint64")

	// ErrNilTree is returned by BuildCodes for a nil root.
	ErrNilTree = errors.New("huffman: tree is nil")

	// ErrUnknownSymbol is returned when encoding a token absent from the code map.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrInvalidBit is returned when a bit-string holds a rune other than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrUnknownCode is returned when a bit path matches no codeword.
	ErrUnknownCode = errors.New("huffman: bits match no codeword")

	// ErrTruncated is returned when input ends inside a codeword.
	ErrTruncated = errors.New("huffman: truncated input")

	// ErrNotPrefixFree is returned when a code map is ambiguous or has an empty code.
	ErrNotPrefixFree = errors.New("huffman: code map is not prefix-free")
)

// Node is a vertex of a Huffman merge tree.
// Leaves carry a symbol; internal nodes carry only the summed frequency.
// A Node never changes after construction.
type Node struct {
	symbol      string
	leaf        bool
	freq        uint64
	left, right *Node
}

// NewLeaf returns a leaf for sym with the given frequency.
func NewLeaf(sym string, freq uint64) *Node {
	return &Node{symbol: sym, leaf: true, freq: freq}
}

// Symbol returns the leaf symbol; ok is false for internal nodes.
func (n *Node) Symbol() (sym string, ok bool) {
	return n.symbol, n.leaf
}

// Freq returns the node frequency.
func (n *Node) Freq() uint64 { return n.freq }

// Left returns the left child, nil for leaves.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, nil for leaves.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether n carries a symbol.
func (n *Node) IsLeaf() bool { return n.leaf }

// MergeStep describes one merge performed by BuildTree.
type MergeStep struct {
	// Step is 1-based.
	Step   int
	Left   *Node
	Right  *Node
	Merged *Node
}

// Option configures BuildTree.
type Option func(*BuildOptions)

// BuildOptions holds the hooks BuildTree honors.
type BuildOptions struct {
	// OnMerge, if non-nil, observes every merge in extraction order.
	OnMerge func(MergeStep)
}

// DefaultOptions returns BuildOptions with a no-op OnMerge.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		OnMerge: func(MergeStep) {},
	}
}

// WithOnMerge installs fn as the merge observer. A nil fn is ignored.
func WithOnMerge(fn func(MergeStep)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
