package export

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/symindex/huffman"
	"github.com/katalvlaran/symindex/rbtree"
)

// Color names used by FromHuffman.
const (
	ColorLeaf     = "leaf"
	ColorInternal = "internal"
)

type rbSource[K constraints.Ordered] struct {
	t *rbtree.Tree[K]
}

// FromRBTree exposes t as a Source. A nil t yields an empty Source.
// Keys are labeled with fmt's default formatting.
func FromRBTree[K constraints.Ordered](t *rbtree.Tree[K]) Source {
	if t == nil {
		return &indexed{}
	}
	return rbSource[K]{t: t}
}

func (s rbSource[K]) Root() ID           { return fromNodeID(s.t.Root()) }
func (s rbSource[K]) Label(id ID) string { return fmt.Sprint(s.t.Key(rbtree.NodeID(id))) }
func (s rbSource[K]) Color(id ID) string { return s.t.Color(rbtree.NodeID(id)).String() }
func (s rbSource[K]) Left(id ID) ID      { return fromNodeID(s.t.Left(rbtree.NodeID(id))) }
func (s rbSource[K]) Right(id ID) ID     { return fromNodeID(s.t.Right(rbtree.NodeID(id))) }

func fromNodeID(n rbtree.NodeID) ID {
	if n == rbtree.NilNode {
		return None
	}
	return ID(n)
}

// indexed is a flattened pointer tree; IDs are preorder positions.
type indexed struct {
	labels, colors []string
	left, right    []ID
}

func (s *indexed) Root() ID {
	if len(s.labels) == 0 {
		return None
	}
	return 0
}
func (s *indexed) Label(id ID) string { return s.labels[id] }
func (s *indexed) Color(id ID) string { return s.colors[id] }
func (s *indexed) Left(id ID) ID      { return s.left[id] }
func (s *indexed) Right(id ID) ID     { return s.right[id] }

// flatten indexes a pointer tree rooted at root. describe returns a node's
// label, color and children; zero-valued P means absent. A pointer already
// indexed is not descended into again.
func flatten[P comparable](root P, describe func(P) (label, color string, left, right P)) *indexed {
	var zero P
	s := &indexed{}
	if root == zero {
		return s
	}

	type frame struct {
		p      P
		parent ID
		right  bool
	}
	seen := make(map[P]bool)
	stack := []frame{{p: root, parent: None}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[f.p] {
			continue
		}
		seen[f.p] = true

		id := ID(len(s.labels))
		label, color, l, r := describe(f.p)
		s.labels = append(s.labels, label)
		s.colors = append(s.colors, color)
		s.left = append(s.left, None)
		s.right = append(s.right, None)
		if f.parent != None {
			if f.right {
				s.right[f.parent] = id
			} else {
				s.left[f.parent] = id
			}
		}

		if r != zero {
			stack = append(stack, frame{p: r, parent: id, right: true})
		}
		if l != zero {
			stack = append(stack, frame{p: l, parent: id})
		}
	}
	return s
}

// FromHuffman exposes the tree under root as a Source. A nil root yields an
// empty Source.
func FromHuffman(root *huffman.Node) Source {
	return flatten(root, func(n *huffman.Node) (string, string, *huffman.Node, *huffman.Node) {
		if sym, ok := n.Symbol(); ok {
			return sym, ColorLeaf, n.Left(), n.Right()
		}
		return strconv.FormatUint(n.Freq(), 10), ColorInternal, n.Left(), n.Right()
	})
}

// FromRecord exposes a decoded Record tree as a Source.
func FromRecord(rec *Record) Source {
	return flatten(rec, func(r *Record) (string, string, *Record, *Record) {
		return r.Key, r.Color, r.Left, r.Right
	})
}
